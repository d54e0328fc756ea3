package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/sony/gobreaker"
)

// ForecastClient implements forecast.ForecastFetcher against the CPTEC
// forecast endpoint.
type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// NewForecastClient creates a ForecastClient. An empty baseURL selects the
// production BrasilAPI.
func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ForecastClient{
		httpClient: client,
		baseURL:    baseURL,
		circuit:    newBreaker("brasilapi-previsao"),
	}
}

// FetchForecast returns up to days entries for the city, each with its
// condition code already decoded. Any failure yields an empty slice; a
// missing forecast never fails a resolution.
func (c *ForecastClient) FetchForecast(ctx context.Context, cityID, days int) []forecast.ForecastDay {
	u := fmt.Sprintf("%s/cptec/v1/clima/previsao/%d/%d", c.baseURL, cityID, days)
	resp, err := doRequest(ctx, c.httpClient, c.circuit, u)
	if err != nil {
		log.Printf("ERROR: forecast fetch for city %d failed: %v", cityID, err)
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Clima []struct {
			Data         string  `json:"data"`
			Condicao     string  `json:"condicao"`
			CondicaoDesc string  `json:"condicao_desc"`
			Min          int     `json:"min"`
			Max          int     `json:"max"`
			IndiceUV     float64 `json:"indice_uv"`
		} `json:"clima"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("ERROR: forecast fetch for city %d: decode response: %v", cityID, err)
		return nil
	}

	out := make([]forecast.ForecastDay, 0, len(payload.Clima))
	for _, day := range payload.Clima {
		info := forecast.DecodeCondition(day.Condicao)
		desc := info.Description
		if info.Kind == forecast.ConditionUnknown && day.CondicaoDesc != "" {
			// Keep the upstream wording for codes the table does not know.
			desc = day.CondicaoDesc
		}
		out = append(out, forecast.ForecastDay{
			Date:          day.Data,
			ConditionCode: day.Condicao,
			Condition:     info.Kind,
			Description:   desc,
			Glyph:         info.Glyph,
			Min:           day.Min,
			Max:           day.Max,
			UVIndex:       day.IndiceUV,
		})
	}
	return out
}
