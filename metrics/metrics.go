// Package metrics implements the StatsCollector component (spec.md C1),
// grounded on the original StatisticsCollector's mutex-guarded counters
// and end-of-run summary, with the counts additionally exposed as
// Prometheus metrics the way navigatorx and wyfcoding-pkg instrument
// their routing pipelines.
package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	shortcutsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ch_contractor_shortcuts_created_total",
		Help: "Number of shortcuts created by the witness search.",
	})
	sameCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ch_contractor_witness_same_total",
		Help: "Number of witness searches that decided no shortcut is needed.",
	})
	unknownCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ch_contractor_witness_unknown_total",
		Help: "Number of witness searches that exhausted the LP iteration cap without deciding.",
	})
	lpRoundsMax = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ch_contractor_lp_rounds_max",
		Help: "Highest number of LP rounds observed in a single witness search.",
	})
	constraintsMax = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ch_contractor_constraints_max",
		Help: "Highest number of constraints accumulated in a single witness search.",
	})
)

func init() {
	prometheus.MustRegister(shortcutsCreated, sameCount, unknownCount, lpRoundsMax, constraintsMax)
}

// StatsCollector accumulates contraction statistics across all workers of
// a hierarchy build. Safe for concurrent use.
type StatsCollector struct {
	mu sync.Mutex

	shortCount   int64
	sameCnt      int64
	unknown      int64
	lpMax        int
	constMax     int
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (self *StatsCollector) RecordShortcut() {
	atomic.AddInt64(&self.shortCount, 1)
	shortcutsCreated.Inc()
}
func (self *StatsCollector) RecordSame() {
	atomic.AddInt64(&self.sameCnt, 1)
	sameCount.Inc()
}
func (self *StatsCollector) RecordUnknown() {
	atomic.AddInt64(&self.unknown, 1)
	unknownCount.Inc()
}
func (self *StatsCollector) RecordLpRounds(rounds int) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if rounds > self.lpMax {
		self.lpMax = rounds
		lpRoundsMax.Set(float64(rounds))
	}
}
func (self *StatsCollector) RecordConstraints(count int) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if count > self.constMax {
		self.constMax = count
		constraintsMax.Set(float64(count))
	}
}

// Summary is the point-in-time snapshot of all counters, matching the
// fields StatisticsCollector's destructor printed in the original.
type Summary struct {
	ShortCount int64
	SameCount  int64
	Unknown    int64
	LpMax      int
	ConstMax   int
}

func (self *StatsCollector) Summary() Summary {
	self.mu.Lock()
	defer self.mu.Unlock()
	return Summary{
		ShortCount: atomic.LoadInt64(&self.shortCount),
		SameCount:  atomic.LoadInt64(&self.sameCnt),
		Unknown:    atomic.LoadInt64(&self.unknown),
		LpMax:      self.lpMax,
		ConstMax:   self.constMax,
	}
}
