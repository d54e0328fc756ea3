package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveCityFirstMatchWins(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 4750, "nome": "São Benedito", "estado": "CE", "latitude": "-4.0474", "longitude": "-40.8644"},
			{"id": 4751, "nome": "São Benedito do Rio Preto", "estado": "MA"}
		]`))
	}))
	defer srv.Close()

	client := NewCityClient(srv.Client(), srv.URL)

	city := client.ResolveCity(context.Background(), "São Benedito")
	if city == nil {
		t.Fatal("expected a city, got nil")
	}
	if gotPath != "/cptec/v1/cidade/São Benedito" {
		t.Errorf("request path = %q", gotPath)
	}
	if city.ID != 4750 || city.Name != "São Benedito" {
		t.Errorf("expected the first match, got %+v", city)
	}
	if lat, lon, ok := city.Coordinates(); !ok || lat != -4.0474 || lon != -40.8644 {
		t.Errorf("unexpected coordinates: %v %v %v", lat, lon, ok)
	}
}

func TestResolveCityNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewCityClient(srv.Client(), srv.URL)

	if city := client.ResolveCity(context.Background(), "Nowhereville"); city != nil {
		t.Fatalf("expected nil for an empty directory response, got %+v", city)
	}
}

func TestResolveCityTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCityClient(srv.Client(), srv.URL)

	// Transport failures are indistinguishable from "no match" at this layer.
	if city := client.ResolveCity(context.Background(), "São Paulo"); city != nil {
		t.Fatalf("expected nil on transport failure, got %+v", city)
	}
}

func TestResolveCityMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	client := NewCityClient(srv.Client(), srv.URL)

	if city := client.ResolveCity(context.Background(), "São Paulo"); city != nil {
		t.Fatalf("expected nil on malformed body, got %+v", city)
	}
}

func TestResolveCityWithoutCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 999, "nome": "Interior", "estado": "MG"}]`))
	}))
	defer srv.Close()

	client := NewCityClient(srv.Client(), srv.URL)

	city := client.ResolveCity(context.Background(), "Interior")
	if city == nil {
		t.Fatal("expected a city, got nil")
	}
	if _, _, ok := city.Coordinates(); ok {
		t.Error("expected the city not to be geolocatable")
	}
}
