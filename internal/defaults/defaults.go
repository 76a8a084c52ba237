package defaults

import "time"

const (
	DefaultInterval   = time.Second
	DefaultLogLevel   = "debug"
	DefaultTimeFormat = "15:04:05.000"
	EnvPrefix         = "DENONCTL"

	LoopMessage    = "Loop ..."
	StopMessage    = "Stop"
	CleanupMessage = "Cleaning Up"
)

func GetInterval() time.Duration {
	return DefaultInterval
}

func GetLogLevel() string {
	return DefaultLogLevel
}

func GetTimeFormat() string {
	return DefaultTimeFormat
}
