package contractor

import (
	"context"
	"math"

	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/metrics"
	"golang.org/x/exp/slog"
)

// HierarchyDriver orchestrates the full multi-level build: repeatedly
// running a LevelContractor until the fraction of still-uncontracted
// nodes drops to restPercent, mirroring Contractor::contractCompletely.
type HierarchyDriver struct {
	graph      graph.IGraph
	registry   *Registry
	stats      *metrics.StatsCollector
	levels     map[int32]int16
	contractor *LevelContractor

	restPercent float64
}

type Options struct {
	Workers       int
	QueueCapacity int
	MaxLpRounds   int
	RestPercent   float64
}

func NewHierarchyDriver(g graph.IGraph, opts Options) *HierarchyDriver {
	stats := metrics.NewStatsCollector()
	registry := NewRegistry()
	return &HierarchyDriver{
		graph:       g,
		registry:    registry,
		stats:       stats,
		levels:      make(map[int32]int16),
		contractor:  NewLevelContractor(g, registry, stats, opts.Workers, opts.QueueCapacity, opts.MaxLpRounds),
		restPercent: opts.RestPercent,
	}
}

func (self *HierarchyDriver) Registry() *Registry {
	return self.registry
}
func (self *HierarchyDriver) Stats() *metrics.StatsCollector {
	return self.stats
}
func (self *HierarchyDriver) NodeLevel(node int32) int16 {
	return self.levels[node]
}

// ContractCompletely runs levels until uncontractedPercent drops to or
// below restPercent, assigning each contracted node the current level
// number, exactly as the original's main loop did.
func (self *HierarchyDriver) ContractCompletely(ctx context.Context) error {
	total := self.graph.NodeCount()
	level := int16(1)

	for {
		candidates := self.remainingNodes()
		uncontracted := len(candidates)
		pct := uncontractedPercent(uncontracted, total)
		if pct <= self.restPercent {
			break
		}

		contracted, err := self.contractor.ContractLevel(ctx, candidates)
		if err != nil {
			return err
		}
		if len(contracted) == 0 {
			// independent set collapsed to nothing: contract whatever
			// remains in one final pass to guarantee termination.
			for _, n := range candidates {
				self.levels[n] = level
			}
			break
		}
		for _, n := range contracted {
			self.levels[n] = level
		}

		slog.Info("contracted level",
			"level", level,
			"contracted", len(contracted),
			"remaining", uncontracted-len(contracted),
			"shortcuts", self.registry.Count(),
		)
		level++
	}

	return nil
}

func (self *HierarchyDriver) remainingNodes() []int32 {
	var nodes []int32
	for i := 0; i < self.graph.NodeCount(); i++ {
		n := int32(i)
		if self.graph.IsNode(n) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// uncontractedPercent matches the original's
// std::round(uncontracted*10000.0/total)/100 rounding to two decimal
// places, since the exact rounding affects where the restPercent
// stopping criterion trips on boundary cases.
func uncontractedPercent(uncontracted, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(uncontracted)*10000.0/float64(total)) / 100
}
