package monitor

import "time"

// Status is the outcome of the latest storage ping.
type Status struct {
	Database  bool
	LastCheck time.Time
	LastError string
}
