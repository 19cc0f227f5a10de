package metrics

import (
	"context"
	"time"
)

// RecordPollerDuration wraps a poll function so every cycle reports its
// duration and outcome under the given poller name.
func RecordPollerDuration(name string, poll func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()
		err := poll(ctx)

		outcome := Success
		if err != nil {
			outcome = Error
		}
		pollerDurationHistogram.WithLabelValues(name, outcome.String()).
			Observe(time.Since(start).Seconds())

		return err
	}
}
