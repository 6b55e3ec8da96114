package codesweeper

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/starhealth/internal/metrics"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// CodesStore is the part of the users repository the sweeper needs.
type CodesStore interface {
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically removes verification codes which are past their expiry.
type Sweeper struct {
	store   CodesStore
	metrics metrics.MetricsCollector
	cron    *cron.Cron
	now     func() time.Time
}

func New(store CodesStore, collector metrics.MetricsCollector) *Sweeper {
	if store == nil {
		log.Fatal("nil codes store provided to sweeper")
	}
	if collector == nil {
		collector = metrics.Noop{}
	}
	return &Sweeper{
		store:   store,
		metrics: collector,
		cron:    cron.New(),
		now:     time.Now,
	}
}

// Start schedules the sweep with a standard cron spec or a descriptor like "@every 15m".
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(context.Background()) }); err != nil {
		return errors.New("sweeper schedule error: " + err.Error())
	}
	s.cron.Start()
	slog.Info("code sweeper started", slog.String("schedule", schedule))
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() error {
	<-s.cron.Stop().Done()
	return nil
}

// Sweep runs one cleaning pass and returns how many codes were cleared.
func (s *Sweeper) Sweep(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()
	cleared, err := s.store.ClearExpiredCodes(ctx, s.now())
	if err != nil {
		slog.Error("code sweep error", slog.String("error", err.Error()))
		return 0
	}
	s.metrics.RecordCodesCleared(cleared)
	if cleared > 0 {
		slog.Info("expired codes cleared", slog.Int64("count", cleared))
	}
	return cleared
}
