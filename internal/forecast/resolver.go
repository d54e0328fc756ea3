package forecast

import (
	"context"
	"errors"
)

// ErrCEPNotFound is the single terminal failure of a lookup: the CEP does
// not exist upstream, or the lookup call failed in any way. The pipeline
// does not distinguish the causes.
var ErrCEPNotFound = errors.New("cep not found")

// AddressResolver resolves a normalized CEP into structured address fields.
type AddressResolver interface {
	ResolveAddress(ctx context.Context, cep string) (Address, error)
}

// CityResolver translates a city name into a directory entry. A nil result
// means "weather unavailable": no match, or a transport failure that the
// implementation logged. Callers must not treat nil as a pipeline failure.
type CityResolver interface {
	ResolveCity(ctx context.Context, cityName string) *CityInfo
}

// ForecastFetcher returns the multi-day forecast for a city. Absence of
// forecast is an empty slice, never an error; forecast is a best-effort
// enrichment of an otherwise successful resolution.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, cityID, days int) []ForecastDay
}

// LocationCache is the durable single-slot store of the last successfully
// resolved city. Load tolerates absent or corrupt persisted data by
// returning nil; Save overwrites the slot, last write wins.
type LocationCache interface {
	Load(ctx context.Context) *CachedLocation
	Save(ctx context.Context, loc CachedLocation) error
}

// Notifier requests that a reminder be scheduled. Fire-and-forget: no
// acknowledgement is expected and no error is surfaced into the pipeline.
type Notifier interface {
	ScheduleReminder(message string)
}
