package validation

import (
	"fmt"
	"strings"
	"time"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func ValidateLogLevel(level string) error {
	if level == "" {
		return fmt.Errorf("log level cannot be empty")
	}

	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return nil
		}
	}

	return fmt.Errorf("log level must be one of %s, got %q", strings.Join(logLevels, ", "), level)
}

func ValidateInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("loop interval must be positive, got %v", d)
	}

	return nil
}
