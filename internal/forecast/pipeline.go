package forecast

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ForecastDays is the fixed horizon requested from the forecast service.
const ForecastDays = 5

// State identifies where a resolution run is in its lifecycle.
type State string

const (
	StateIdle             State = "idle"
	StateResolvingAddress State = "resolving_address"
	StateResolvingCity    State = "resolving_city"
	StateFetchingForecast State = "fetching_forecast"
	StateAggregating      State = "aggregating"
	StateDone             State = "done"
	// Terminal failure: the CEP lookup failed, the run produces no result.
	StateAddressFailed State = "address_failed"
	// Short-circuit: the city could not be resolved, the run proceeds to
	// aggregation with an empty forecast.
	StateCityUnresolved State = "city_unresolved"
)

// Pipeline chains the CEP, city and forecast lookups, keeps the single-slot
// location cache in step with the latest successful resolution, and requests
// the next-day reminder.
//
// Stages run strictly sequentially; each stage's input is the previous
// stage's output. Overlapping submissions are handled by a monotonically
// increasing generation counter: a run that is no longer the newest
// generation must not commit its aggregate, write the cache, or notify.
type Pipeline struct {
	addresses AddressResolver
	cities    CityResolver
	forecasts ForecastFetcher
	cache     LocationCache
	notifier  Notifier
	clock     clockwork.Clock

	// gen is the generation of the newest submitted run.
	gen atomic.Uint64

	mu     sync.RWMutex
	latest *Result
}

// NewPipeline creates a Pipeline.
func NewPipeline(
	addresses AddressResolver,
	cities CityResolver,
	forecasts ForecastFetcher,
	cache LocationCache,
	notifier Notifier,
	clock clockwork.Clock,
) *Pipeline {
	return &Pipeline{
		addresses: addresses,
		cities:    cities,
		forecasts: forecasts,
		cache:     cache,
		notifier:  notifier,
		clock:     clock,
	}
}

// Resolve runs one full resolution for the submitted postal code and returns
// the aggregate. Only ErrCEPNotFound is surfaced as a failure; every other
// upstream problem degrades to a partial result with an empty forecast.
func (p *Pipeline) Resolve(ctx context.Context, rawCEP string) (*Result, error) {
	gen := p.gen.Add(1)
	runID := uuid.NewString()[:8]

	cep := NormalizeCEP(rawCEP)
	res := &Result{CEP: cep}

	var addrErr error
	state := StateResolvingAddress
	log.Printf("DEBUG: run %s (gen %d): %s -> %s, cep %q", runID, gen, StateIdle, state, cep)

	for {
		var next State

		switch state {
		case StateResolvingAddress:
			addr, err := p.addresses.ResolveAddress(ctx, cep)
			if err != nil {
				addrErr = err
				next = StateAddressFailed
				break
			}
			res.Address = addr
			if addr.City == "" {
				// Successful lookup with no city to resolve.
				next = StateCityUnresolved
				break
			}
			next = StateResolvingCity

		case StateResolvingCity:
			city := p.cities.ResolveCity(ctx, res.Address.City)
			if city == nil {
				next = StateCityUnresolved
				break
			}
			res.City = city
			next = StateFetchingForecast

		case StateFetchingForecast:
			res.Forecast = p.forecasts.FetchForecast(ctx, res.City.ID, ForecastDays)
			next = StateAggregating

		case StateCityUnresolved:
			res.Forecast = nil
			next = StateAggregating

		case StateAggregating:
			p.aggregate(ctx, gen, runID, res)
			log.Printf("DEBUG: run %s (gen %d): %s -> %s", runID, gen, state, StateDone)
			return res, nil

		case StateAddressFailed:
			p.clearIfCurrent(gen)
			log.Printf("INFO: run %s (gen %d): cep %q lookup failed: %v", runID, gen, cep, addrErr)
			return nil, fmt.Errorf("resolve cep %q: %w", cep, ErrCEPNotFound)
		}

		log.Printf("DEBUG: run %s (gen %d): %s -> %s", runID, gen, state, next)
		state = next
	}
}

// aggregate performs the ordered side effects of a completed run: commit the
// aggregate, persist the resolved city when geolocatable, and request the
// reminder when a tomorrow entry exists. A superseded run performs none of
// them. The generation check and all three effects run under one critical
// section so a newer run cannot interleave between the check and the writes;
// a newer run's own effects are serialized after this one's and win.
func (p *Pipeline) aggregate(ctx context.Context, gen uint64, runID string, res *Result) {
	res.ResolvedAt = p.clock.Now().UTC()
	if res.Forecast == nil {
		// The aggregate's wire shape is an empty sequence, never null.
		res.Forecast = []ForecastDay{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gen.Load() != gen {
		log.Printf("DEBUG: run %s (gen %d): superseded, discarding result", runID, gen)
		return
	}
	p.latest = res

	if res.City != nil {
		if lat, lon, ok := res.City.Coordinates(); ok {
			loc := CachedLocation{
				CityID:     res.City.ID,
				CityName:   res.City.Name,
				Latitude:   lat,
				Longitude:  lon,
				ResolvedAt: res.ResolvedAt,
			}
			if err := p.cache.Save(ctx, loc); err != nil {
				// Non-fatal: the in-memory result stands, no retry.
				log.Printf("ERROR: run %s: persist last location: %v", runID, err)
			}
		} else {
			log.Printf("INFO: run %s: city %q has no usable coordinates, cache unchanged", runID, res.City.Name)
		}
	}

	if len(res.Forecast) >= 2 {
		p.notifier.ScheduleReminder(buildReminder(res.City.Name, res.Forecast[1]))
	}
}

// clearIfCurrent drops the previous result after a terminal address failure,
// unless a newer run has already started.
func (p *Pipeline) clearIfCurrent(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen.Load() != gen {
		return
	}
	p.latest = nil
}

// Latest returns the aggregate of the newest completed run, or nil.
func (p *Pipeline) Latest() *Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

// RefreshCached re-fetches the forecast for the cached location and requests
// the reminder again so its content tracks the current "tomorrow". It does
// not touch the lookup aggregate or the cache slot.
func (p *Pipeline) RefreshCached(ctx context.Context) {
	loc := p.cache.Load(ctx)
	if loc == nil {
		log.Printf("INFO: refresh: no cached location, skipping")
		return
	}

	days := p.forecasts.FetchForecast(ctx, loc.CityID, ForecastDays)
	if len(days) < 2 {
		log.Printf("INFO: refresh: forecast for %q has %d day(s), reminder needs tomorrow", loc.CityName, len(days))
		return
	}

	p.notifier.ScheduleReminder(buildReminder(loc.CityName, days[1]))
}

// buildReminder renders the notification message from tomorrow's entry.
func buildReminder(city string, tomorrow ForecastDay) string {
	return fmt.Sprintf("Previsão para amanhã em %s: %s, mín %d°C, máx %d°C",
		city, tomorrow.Description, tomorrow.Min, tomorrow.Max)
}
