package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCapacity is the default ring buffer capacity.
const DefaultCapacity = 4096

// Kind distinguishes request samples from query samples.
type Kind uint8

const (
	KindRequest Kind = iota
	KindQuery
)

// Sample is one timing measurement.
type Sample struct {
	Kind       Kind
	Op         string // HTTP path or database operation
	Status     int    // HTTP status (0 for queries)
	DurationMs float64
	At         time.Time
}

// Collector keeps the most recent timing samples in a fixed-size ring.
// Record never blocks beyond a single mutex-guarded slot write; when the
// ring is full the oldest sample is overwritten. Aggregation happens only
// in Report.
type Collector struct {
	mu    sync.Mutex
	ring  []Sample
	next  int
	total int64
}

// NewCollector creates a collector with the given ring capacity.
func NewCollector(capacity int) *Collector {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Collector{ring: make([]Sample, capacity)}
}

// Record stores one sample, overwriting the oldest when full.
func (c *Collector) Record(s Sample) {
	c.mu.Lock()
	c.ring[c.next] = s
	c.next = (c.next + 1) % len(c.ring)
	c.mu.Unlock()
	atomic.AddInt64(&c.total, 1)
}

// Total returns the number of samples ever recorded.
func (c *Collector) Total() int64 {
	return atomic.LoadInt64(&c.total)
}

// OpStat aggregates the samples for one operation.
type OpStat struct {
	Op      string  `json:"op"`
	Count   int     `json:"count"`
	AvgMs   float64 `json:"avg_ms"`
	MaxMs   float64 `json:"max_ms"`
	TotalMs float64 `json:"total_ms"`
}

// Report is the aggregated view served by the perf endpoint.
type Report struct {
	Total        int64    `json:"total_samples"`
	RequestP50Ms float64  `json:"request_p50_ms"`
	RequestP95Ms float64  `json:"request_p95_ms"`
	Requests     []OpStat `json:"requests"`
	Queries      []OpStat `json:"queries"`
}

// MakeReport aggregates the ring into per-op stats and request percentiles.
// Sorting makes this the expensive path; call it on demand, not per request.
func (c *Collector) MakeReport(topN int) Report {
	c.mu.Lock()
	buf := make([]Sample, len(c.ring))
	copy(buf, c.ring)
	c.mu.Unlock()

	var requestDurations []float64
	requests := make(map[string]*OpStat)
	queries := make(map[string]*OpStat)

	for _, s := range buf {
		if s.At.IsZero() {
			continue
		}
		byOp := queries
		if s.Kind == KindRequest {
			byOp = requests
			requestDurations = append(requestDurations, s.DurationMs)
		}
		st, ok := byOp[s.Op]
		if !ok {
			st = &OpStat{Op: s.Op}
			byOp[s.Op] = st
		}
		st.Count++
		st.TotalMs += s.DurationMs
		if s.DurationMs > st.MaxMs {
			st.MaxMs = s.DurationMs
		}
	}

	return Report{
		Total:        c.Total(),
		RequestP50Ms: percentile(requestDurations, 0.50),
		RequestP95Ms: percentile(requestDurations, 0.95),
		Requests:     topByTotal(requests, topN),
		Queries:      topByTotal(queries, topN),
	}
}

func percentile(durations []float64, p float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

func topByTotal(stats map[string]*OpStat, topN int) []OpStat {
	out := make([]OpStat, 0, len(stats))
	for _, s := range stats {
		s.AvgMs = s.TotalMs / float64(s.Count)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalMs > out[j].TotalMs })
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
