package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncPersonInserted is a no-op.
func (n *NoopRecorder) IncPersonInserted() {}

// IncQuoteInserted is a no-op.
func (n *NoopRecorder) IncQuoteInserted() {}

// ObserveInsertDuration is a no-op.
func (n *NoopRecorder) ObserveInsertDuration(duration time.Duration) {}

// IncCheck is a no-op.
func (n *NoopRecorder) IncCheck(status string) {}

// ObserveCheckDuration is a no-op.
func (n *NoopRecorder) ObserveCheckDuration(duration time.Duration) {}
