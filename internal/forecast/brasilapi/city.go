package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/sony/gobreaker"
)

// CityClient implements forecast.CityResolver against the CPTEC city
// directory.
type CityClient struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// NewCityClient creates a CityClient. An empty baseURL selects the
// production BrasilAPI.
func NewCityClient(client *http.Client, baseURL string) *CityClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CityClient{
		httpClient: client,
		baseURL:    baseURL,
		circuit:    newBreaker("brasilapi-cidade"),
	}
}

// ResolveCity queries the directory by exact name. Zero matches and any
// transport failure both yield nil; the distinction is logged here and not
// surfaced to the caller. When the directory returns several entries the
// first one wins, by contract, not by any semantic ranking.
func (c *CityClient) ResolveCity(ctx context.Context, cityName string) *forecast.CityInfo {
	u := fmt.Sprintf("%s/cptec/v1/cidade/%s", c.baseURL, url.PathEscape(cityName))
	resp, err := doRequest(ctx, c.httpClient, c.circuit, u)
	if err != nil {
		log.Printf("ERROR: city directory lookup for %q failed: %v", cityName, err)
		return nil
	}
	defer resp.Body.Close()

	var cities []forecast.CityInfo
	if err := json.NewDecoder(resp.Body).Decode(&cities); err != nil {
		log.Printf("ERROR: city directory lookup for %q: decode response: %v", cityName, err)
		return nil
	}

	if len(cities) == 0 {
		log.Printf("INFO: city directory has no match for %q", cityName)
		return nil
	}
	if len(cities) > 1 {
		log.Printf("INFO: city directory returned %d matches for %q, using the first", len(cities), cityName)
	}

	city := cities[0]
	return &city
}
