package jsonschemaform

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Cache metrics
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	// Per-keyword timing
	keywordTiming sync.Map // map[string]*keywordMetrics
}

// keywordMetrics tracks metrics for a single keyword checker.
type keywordMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	failures    atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first sample becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed top-level validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old {
			break
		}
		if m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old {
			break
		}
		if m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordCacheHit records a compiled-schema or pattern cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordKeyword records one keyword checker invocation.
func (m *Metrics) RecordKeyword(keyword string, duration time.Duration, failed bool) {
	km := m.getOrCreateKeywordMetrics(keyword)
	km.invocations.Add(1)
	km.totalTime.Add(uint64(duration.Nanoseconds()))
	if failed {
		km.failures.Add(1)
	}
}

func (m *Metrics) getOrCreateKeywordMetrics(name string) *keywordMetrics {
	if v, ok := m.keywordTiming.Load(name); ok {
		return v.(*keywordMetrics)
	}
	km := &keywordMetrics{}
	actual, _ := m.keywordTiming.LoadOrStore(name, km)
	return actual.(*keywordMetrics)
}

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of validations that produced no report.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the fraction of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total)
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load())
}

// CacheHits returns the total cache hits.
func (m *Metrics) CacheHits() uint64 {
	return m.cacheHits.Load()
}

// CacheMisses returns the total cache misses.
func (m *Metrics) CacheMisses() uint64 {
	return m.cacheMisses.Load()
}

// CacheHitRate returns the cache hit rate (0.0 to 1.0).
func (m *Metrics) CacheHitRate() float64 {
	hits := m.cacheHits.Load()
	total := hits + m.cacheMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// KeywordStats holds statistics for a single keyword checker.
type KeywordStats struct {
	Keyword     string
	Invocations uint64
	TotalTime   time.Duration
	AvgTime     time.Duration
	Failures    uint64
}

// KeywordStats returns statistics for a specific keyword.
func (m *Metrics) KeywordStats(keyword string) (KeywordStats, bool) {
	v, ok := m.keywordTiming.Load(keyword)
	if !ok {
		return KeywordStats{Keyword: keyword}, false
	}
	return buildKeywordStats(keyword, v.(*keywordMetrics)), true
}

// AllKeywordStats returns statistics for every keyword seen so far.
func (m *Metrics) AllKeywordStats() []KeywordStats {
	var stats []KeywordStats
	m.keywordTiming.Range(func(key, value any) bool {
		stats = append(stats, buildKeywordStats(key.(string), value.(*keywordMetrics)))
		return true
	})
	return stats
}

func buildKeywordStats(name string, km *keywordMetrics) KeywordStats {
	invocations := km.invocations.Load()
	totalTime := km.totalTime.Load()

	var avgTime time.Duration
	if invocations > 0 {
		avgTime = time.Duration(totalTime / invocations)
	}

	return KeywordStats{
		Keyword:     name,
		Invocations: invocations,
		TotalTime:   time.Duration(totalTime),
		AvgTime:     avgTime,
		Failures:    km.failures.Load(),
	}
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	ValidationsTotal uint64  `json:"validations_total"`
	ValidationsValid uint64  `json:"validations_valid"`
	ValidationRate   float64 `json:"validation_rate"`

	AvgValidationTimeNs uint64 `json:"avg_validation_time_ns"`
	MinValidationTimeNs uint64 `json:"min_validation_time_ns"`
	MaxValidationTimeNs uint64 `json:"max_validation_time_ns"`

	CacheHits    uint64  `json:"cache_hits"`
	CacheMisses  uint64  `json:"cache_misses"`
	CacheHitRate float64 `json:"cache_hit_rate"`

	Keywords []KeywordStats `json:"keywords,omitempty"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()
	hits := m.cacheHits.Load()
	misses := m.cacheMisses.Load()

	var avgTime, validationRate, cacheHitRate float64
	if total > 0 {
		avgTime = float64(m.validationTimeTotal.Load()) / float64(total)
		validationRate = float64(m.validationsValid.Load()) / float64(total)
	}
	if cacheTotal := hits + misses; cacheTotal > 0 {
		cacheHitRate = float64(hits) / float64(cacheTotal)
	}

	minTime := m.validationTimeMin.Load()
	if minTime == ^uint64(0) {
		minTime = 0
	}

	return Snapshot{
		Timestamp:           time.Now(),
		ValidationsTotal:    total,
		ValidationsValid:    m.validationsValid.Load(),
		ValidationRate:      validationRate,
		AvgValidationTimeNs: uint64(avgTime),
		MinValidationTimeNs: minTime,
		MaxValidationTimeNs: m.validationTimeMax.Load(),
		CacheHits:           hits,
		CacheMisses:         misses,
		CacheHitRate:        cacheHitRate,
		Keywords:            m.AllKeywordStats(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)

	m.keywordTiming.Range(func(key, _ any) bool {
		m.keywordTiming.Delete(key)
		return true
	})
}
