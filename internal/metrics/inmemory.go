package metrics

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	PeopleInserted        uint64
	QuotesInserted        uint64
	InsertDurationCount   uint64
	InsertDurationTotalNs int64
	ChecksPassed          uint64
	ChecksFailed          uint64
	ChecksErrored         uint64
	CheckDurationCount    uint64
	CheckDurationTotalNs  int64
}

// LogValue groups the totals that are non-zero for one run, so a seeding
// run does not log check counters and vice versa.
func (s Snapshot) LogValue() slog.Value {
	var attrs []slog.Attr
	add := func(key string, v uint64) {
		if v > 0 {
			attrs = append(attrs, slog.Uint64(key, v))
		}
	}
	add("people_inserted", s.PeopleInserted)
	add("quotes_inserted", s.QuotesInserted)
	if s.InsertDurationCount > 0 {
		attrs = append(attrs, slog.Duration("insert_duration_total", time.Duration(s.InsertDurationTotalNs)))
	}
	add("checks_passed", s.ChecksPassed)
	add("checks_failed", s.ChecksFailed)
	add("checks_errored", s.ChecksErrored)
	if s.CheckDurationCount > 0 {
		attrs = append(attrs, slog.Duration("check_duration_total", time.Duration(s.CheckDurationTotalNs)))
	}
	return slog.GroupValue(attrs...)
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	peopleInserted        uint64
	quotesInserted        uint64
	insertDurationCount   uint64
	insertDurationTotalNs int64
	checksPassed          uint64
	checksFailed          uint64
	checksErrored         uint64
	checkDurationCount    uint64
	checkDurationTotalNs  int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		PeopleInserted:        atomic.LoadUint64(&m.peopleInserted),
		QuotesInserted:        atomic.LoadUint64(&m.quotesInserted),
		InsertDurationCount:   atomic.LoadUint64(&m.insertDurationCount),
		InsertDurationTotalNs: atomic.LoadInt64(&m.insertDurationTotalNs),
		ChecksPassed:          atomic.LoadUint64(&m.checksPassed),
		ChecksFailed:          atomic.LoadUint64(&m.checksFailed),
		ChecksErrored:         atomic.LoadUint64(&m.checksErrored),
		CheckDurationCount:    atomic.LoadUint64(&m.checkDurationCount),
		CheckDurationTotalNs:  atomic.LoadInt64(&m.checkDurationTotalNs),
	}
}

// IncPersonInserted increments the inserted people counter.
func (m *InMemoryRecorder) IncPersonInserted() {
	atomic.AddUint64(&m.peopleInserted, 1)
}

// IncQuoteInserted increments the inserted quotes counter.
func (m *InMemoryRecorder) IncQuoteInserted() {
	atomic.AddUint64(&m.quotesInserted, 1)
}

// ObserveInsertDuration records the latency of one insert round trip.
func (m *InMemoryRecorder) ObserveInsertDuration(duration time.Duration) {
	atomic.AddUint64(&m.insertDurationCount, 1)
	atomic.AddInt64(&m.insertDurationTotalNs, duration.Nanoseconds())
}

// IncCheck increments the counter for status. Unknown statuses are ignored.
func (m *InMemoryRecorder) IncCheck(status string) {
	switch status {
	case CheckPassed:
		atomic.AddUint64(&m.checksPassed, 1)
	case CheckFailed:
		atomic.AddUint64(&m.checksFailed, 1)
	case CheckError:
		atomic.AddUint64(&m.checksErrored, 1)
	}
}

// ObserveCheckDuration records how long one check took.
func (m *InMemoryRecorder) ObserveCheckDuration(duration time.Duration) {
	atomic.AddUint64(&m.checkDurationCount, 1)
	atomic.AddInt64(&m.checkDurationTotalNs, duration.Nanoseconds())
}
