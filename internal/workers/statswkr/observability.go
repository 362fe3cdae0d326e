package statswkr

import (
	"time"

	"mergington.edu/activities-backend/internal/pkg/observability"
)

func observeCalcDuration(job string, f func() error) error {
	start := time.Now()
	defer func() {
		dur := time.Since(start)
		observability.WorkerCalcDuration.WithLabelValues(job).Set(float64(dur.Seconds()))
	}()
	return f()
}
