package idle

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/r11/denonctl/internal/defaults"
	"github.com/r11/denonctl/internal/validation"
)

// Loop logs a debug line, waits Interval, and repeats until its context ends.
type Loop struct {
	Interval time.Duration
	Logger   zerolog.Logger
}

func New(interval time.Duration, logger zerolog.Logger) *Loop {
	return &Loop{
		Interval: interval,
		Logger:   logger,
	}
}

// Run blocks until ctx is cancelled and returns the number of lines logged.
// Cancellation is how the loop is meant to end, so it is not reported as an error.
func (l *Loop) Run(ctx context.Context) (int, error) {
	if err := validation.ValidateInterval(l.Interval); err != nil {
		return 0, err
	}

	timer := time.NewTimer(l.Interval)
	defer timer.Stop()

	iterations := 0
	for {
		if ctx.Err() != nil {
			return iterations, nil
		}

		l.Logger.Debug().Msg(defaults.LoopMessage)
		iterations++

		timer.Reset(l.Interval)
		select {
		case <-ctx.Done():
			return iterations, nil
		case <-timer.C:
		}
	}
}
