package engine

import (
	"net/http"
	"sync/atomic"
	"time"
)

// MetricsTransport counts round trips, failed round trips and cumulative
// latency for the end-of-run log line.
type MetricsTransport struct {
	Base      http.RoundTripper
	requests  int64
	failures  int64
	durationN int64
}

type Stats struct {
	Requests int64
	Failures int64
	Duration time.Duration
}

func (t *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	atomic.AddInt64(&t.requests, 1)
	if err != nil {
		atomic.AddInt64(&t.failures, 1)
	}
	atomic.AddInt64(&t.durationN, time.Since(start).Nanoseconds())
	return resp, err
}

func (t *MetricsTransport) Snapshot() Stats {
	return Stats{
		Requests: atomic.LoadInt64(&t.requests),
		Failures: atomic.LoadInt64(&t.failures),
		Duration: time.Duration(atomic.LoadInt64(&t.durationN)),
	}
}
