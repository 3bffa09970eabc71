package contractor

import (
	"context"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/metrics"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
	"golang.org/x/sync/errgroup"
)

// LevelContractor contracts a single level: it selects an independent
// set of nodes, builds the (in-edge, out-edge) pairs meeting at each,
// evaluates their necessity across a worker pool, administers the
// resulting shortcuts into the registry, wires them into the graph in
// place of the contracted nodes, and removes those nodes from the graph
// (the HierarchyDriver assigns them their CH level). Mirrors
// Contractor::contract(level) in the original.
type LevelContractor struct {
	graph    graph.IGraph
	registry *Registry
	stats    *metrics.StatsCollector

	workers       int
	queueCapacity int
	maxLpRounds   int
}

func NewLevelContractor(g graph.IGraph, registry *Registry, stats *metrics.StatsCollector, workers, queueCapacity, maxLpRounds int) *LevelContractor {
	return &LevelContractor{
		graph:         g,
		registry:      registry,
		stats:         stats,
		workers:       workers,
		queueCapacity: queueCapacity,
		maxLpRounds:   maxLpRounds,
	}
}

// ContractLevel contracts candidates that survive independent-set
// selection, returning the nodes actually contracted this round (the
// HierarchyDriver assigns them the current level number).
func (self *LevelContractor) ContractLevel(ctx context.Context, candidates []int32) ([]int32, error) {
	selector := NewIndependentSetSelector(self.graph)
	set := selector.Select(candidates)
	if len(set) == 0 {
		return nil, nil
	}

	in_set := make(map[int32]bool, len(set))
	for _, n := range set {
		in_set[n] = true
	}

	pairs := self.buildPairs(set, in_set)

	queue := NewWorkQueue(self.queueCapacity)
	out := make(chan Created, self.queueCapacity)

	group, group_ctx := errgroup.WithContext(ctx)
	for i := 0; i < self.workers; i++ {
		witness := NewWitnessSearch(self.graph, self.stats, self.maxLpRounds, in_set)
		worker := NewWorker(self.graph, witness)
		group.Go(func() error {
			worker.Run(queue, out)
			return group_ctx.Err()
		})
	}

	go func() {
		for _, pair := range pairs {
			queue.Push(pair)
		}
		queue.Close()
	}()

	done := make(chan error, 1)
	go func() { done <- group.Wait() }()

	var created []Created
collect:
	for {
		select {
		case c, ok := <-out:
			if !ok {
				break collect
			}
			created = append(created, c)
		case err := <-done:
			if err != nil {
				return nil, err
			}
			// drain remaining buffered shortcuts after workers finished
			close(out)
		}
	}

	self.commitShortcuts(created)
	self.removeNodes(set)

	return set, nil
}

func (self *LevelContractor) buildPairs(set []int32, in_set map[int32]bool) []structs.EdgePair {
	explorer := self.graph.GetGraphExplorer()
	var pairs []structs.EdgePair
	for _, via := range set {
		var in_refs, out_refs []structs.EdgeRef
		explorer.ForAdjacentEdges(via, graph.BACKWARD, func(ref structs.EdgeRef) {
			if !in_set[ref.OtherID] {
				in_refs = append(in_refs, ref)
			}
		})
		explorer.ForAdjacentEdges(via, graph.FORWARD, func(ref structs.EdgeRef) {
			if !in_set[ref.OtherID] {
				out_refs = append(out_refs, ref)
			}
		})
		for _, in := range in_refs {
			for _, out := range out_refs {
				if in.OtherID == out.OtherID {
					continue
				}
				pairs = append(pairs, structs.EdgePair{
					InEdge:  in,
					OutEdge: out,
					Via:     via,
					From:    in.OtherID,
					To:      out.OtherID,
				})
			}
		}
	}
	return pairs
}

func (self *LevelContractor) commitShortcuts(created []Created) {
	if len(created) == 0 {
		return
	}
	batch := make([]structs.Shortcut, len(created))
	for i, c := range created {
		batch[i] = c.Shortcut
	}
	refs := self.registry.AdministerShortcuts(batch)
	for i, c := range created {
		ref := refs[i]
		self.graph.AddEdge(c.Pair.From, c.Pair.To, shortcutCostOf(self.registry, ref))
	}
}

func shortcutCostOf(registry *Registry, ref structs.EdgeRef) cost.Cost {
	return registry.Get(ref.EdgeID).Cost
}

func (self *LevelContractor) removeNodes(set []int32) {
	for _, n := range set {
		self.graph.RemoveNode(n)
	}
}
