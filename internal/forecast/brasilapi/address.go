package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/sony/gobreaker"
)

// AddressClient implements forecast.AddressResolver against the BrasilAPI
// CEP v2 endpoint.
type AddressClient struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// NewAddressClient creates an AddressClient. An empty baseURL selects the
// production BrasilAPI.
func NewAddressClient(client *http.Client, baseURL string) *AddressClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AddressClient{
		httpClient: client,
		baseURL:    baseURL,
		circuit:    newBreaker("brasilapi-cep"),
	}
}

// ResolveAddress looks up a CEP. Every failure mode (incomplete code,
// transport error, non-2xx status, malformed body) maps to the same terminal
// forecast.ErrCEPNotFound; callers do not distinguish them.
func (c *AddressClient) ResolveAddress(ctx context.Context, cep string) (forecast.Address, error) {
	digits := forecast.CEPDigits(cep)
	if !forecast.IsCompleteCEP(digits) {
		return forecast.Address{}, fmt.Errorf("%w: incomplete cep %q", forecast.ErrCEPNotFound, cep)
	}

	u := fmt.Sprintf("%s/cep/v2/%s", c.baseURL, digits)
	resp, err := doRequest(ctx, c.httpClient, c.circuit, u)
	if err != nil {
		return forecast.Address{}, fmt.Errorf("%w: %v", forecast.ErrCEPNotFound, err)
	}
	defer resp.Body.Close()

	var payload struct {
		State        string `json:"state"`
		City         string `json:"city"`
		Neighborhood string `json:"neighborhood"`
		Street       string `json:"street"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return forecast.Address{}, fmt.Errorf("%w: decode response: %v", forecast.ErrCEPNotFound, err)
	}

	return forecast.Address{
		State:        payload.State,
		City:         payload.City,
		Neighborhood: payload.Neighborhood,
		Street:       payload.Street,
	}, nil
}
