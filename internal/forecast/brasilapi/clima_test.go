package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
)

func TestFetchForecast(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cidade": "São Paulo",
			"estado": "SP",
			"clima": [
				{"data": "2026-09-01", "condicao": "c", "condicao_desc": "Claro", "min": 18, "max": 27, "indice_uv": 8},
				{"data": "2026-09-02", "condicao": "ci", "condicao_desc": "Chuvas Isoladas", "min": 17, "max": 25, "indice_uv": 7.5}
			]
		}`))
	}))
	defer srv.Close()

	client := NewForecastClient(srv.Client(), srv.URL)

	days := client.FetchForecast(context.Background(), 244, 5)
	if gotPath != "/cptec/v1/clima/previsao/244/5" {
		t.Errorf("request path = %q", gotPath)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	today := days[0]
	if today.Date != "2026-09-01" || today.ConditionCode != "c" {
		t.Errorf("unexpected day 0: %+v", today)
	}
	if today.Condition != forecast.ConditionClear || today.Glyph != "☀️" {
		t.Errorf("condition code was not decoded: %+v", today)
	}
	if today.Min != 18 || today.Max != 27 || today.UVIndex != 8 {
		t.Errorf("unexpected day 0 numbers: %+v", today)
	}

	tomorrow := days[1]
	if tomorrow.Condition != forecast.ConditionPartlyCloudy {
		t.Errorf("unexpected day 1 condition: %+v", tomorrow)
	}
	if tomorrow.Description != "Parcialmente nublado" {
		t.Errorf("decoded description should win for known codes, got %q", tomorrow.Description)
	}
}

func TestFetchForecastUnknownCodeKeepsUpstreamDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clima": [
			{"data": "2026-09-01", "condicao": "xyz", "condicao_desc": "Fenômeno novo", "min": 10, "max": 20}
		]}`))
	}))
	defer srv.Close()

	client := NewForecastClient(srv.Client(), srv.URL)

	days := client.FetchForecast(context.Background(), 244, 5)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Condition != forecast.ConditionUnknown {
		t.Errorf("expected unknown condition, got %q", days[0].Condition)
	}
	if days[0].Description != "Fenômeno novo" {
		t.Errorf("expected upstream description fallback, got %q", days[0].Description)
	}
}

func TestFetchForecastFailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no forecast", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewForecastClient(srv.Client(), srv.URL)

	if days := client.FetchForecast(context.Background(), 244, 5); len(days) != 0 {
		t.Fatalf("expected empty forecast on failure, got %d days", len(days))
	}
}

func TestFetchForecastMalformedBodyIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clima": [{"min": "not a number"}]}`))
	}))
	defer srv.Close()

	client := NewForecastClient(srv.Client(), srv.URL)

	if days := client.FetchForecast(context.Background(), 244, 5); len(days) != 0 {
		t.Fatalf("expected empty forecast on malformed body, got %d days", len(days))
	}
}
