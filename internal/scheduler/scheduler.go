package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/go-co-op/gocron"
)

// Scheduler refreshes the forecast for the cached location once a day so
// the reminder keeps describing the current "tomorrow".
type Scheduler struct {
	scheduler *gocron.Scheduler
	pipeline  *forecast.Pipeline
	hour      int
}

// New creates a Scheduler firing daily at the given local hour.
func New(pipeline *forecast.Pipeline, hour int) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		pipeline:  pipeline,
		hour:      hour,
	}
}

// Start schedules the daily refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	at := fmt.Sprintf("%02d:00", s.hour)

	_, err := s.scheduler.Every(1).Day().At(at).Do(func() {
		log.Println("scheduler: running cached-location forecast refresh")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.pipeline.RefreshCached(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
