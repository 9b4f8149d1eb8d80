// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Check statuses reported to IncCheck.
const (
	CheckPassed = "passed"
	CheckFailed = "failed"
	CheckError  = "error"
)

// Recorder captures metric events for the seeder and verifier.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Seeding metrics
	IncPersonInserted()
	IncQuoteInserted()
	ObserveInsertDuration(duration time.Duration)

	// Verification metrics
	IncCheck(status string) // status: "passed", "failed" or "error"
	ObserveCheckDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
