package statswkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/pkg/observability"
	"mergington.edu/activities-backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	ActivityService  *service.Activity
	SiteStatsService *service.SiteStats
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("worker is disabled due to configuration")
		return
	}
	(&Worker{
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("worker batch started")

			if err := observeCalcDuration("occupancy", func() error {
				return w.refreshOccupancy(ctx)
			}); err != nil {
				log.Error().Err(err).Str("job", "occupancy").Msg("worker job failed")
			}

			if err := observeCalcDuration("siteStats", func() error {
				_, err := w.SiteStatsService.RefreshSiteStats(ctx)
				return err
			}); err != nil {
				log.Error().Err(err).Str("job", "siteStats").Msg("worker job failed")
			}

			log.Info().Int("count", w.count).Msg("worker batch finished")

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

// refreshOccupancy re-primes the per-activity occupancy and capacity gauges
// from a fresh registry snapshot.
func (w *Worker) refreshOccupancy(ctx context.Context) error {
	activities, err := w.ActivityService.GetActivities(ctx)
	if err != nil {
		return err
	}

	for _, activity := range activities {
		observability.ActivityOccupancy.WithLabelValues(activity.Name).Set(float64(len(activity.Participants)))
		observability.ActivityCapacity.WithLabelValues(activity.Name).Set(float64(activity.MaxParticipants))
	}

	return nil
}

func (w *Worker) Count() int {
	return w.count
}
