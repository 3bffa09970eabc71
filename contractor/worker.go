package contractor

import (
	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
)

// Worker drains a WorkQueue, deciding for each EdgePair whether the
// shortcut it represents is necessary and, if so, producing it. Mirrors
// ContractingThread::operator(): dequeues pairs one at a time and
// remembers the previous pair's in-edge cost, since consecutive pairs in
// a level's queue very often share the same in-edge (one node's several
// out-edges are each paired with the same in-edge in turn).
type Worker struct {
	explorer graph.IGraphExplorer
	witness  *WitnessSearch

	warmRef  structs.EdgeRef
	warmCost cost.Cost
	warmSet  bool
}

func NewWorker(g graph.IGraph, witness *WitnessSearch) *Worker {
	return &Worker{
		explorer: g.GetGraphExplorer(),
		witness:  witness,
	}
}

// Created is a shortcut along with the EdgePair it replaces, so the
// LevelContractor can add it to the graph between the pair's From and To
// once the registry has assigned it a final id.
type Created struct {
	Shortcut structs.Shortcut
	Pair     structs.EdgePair
}

// Run processes the queue until it's closed, sending every necessary
// shortcut to out. Run is meant to be launched once per worker goroutine
// inside an errgroup.
func (self *Worker) Run(queue *WorkQueue, out chan<- Created) {
	for pair := range queue.Chan() {
		if self.explorer.GetOtherNode(pair.InEdge, pair.Via) != pair.From ||
			self.explorer.GetOtherNode(pair.OutEdge, pair.Via) != pair.To {
			panic("malformed edge pair: in-edge and out-edge do not meet at the contracted node")
		}
		in_cost := self.edgeCost(pair.InEdge)
		out_cost := self.explorerCost(pair.OutEdge)
		shortcut_cost := in_cost.Add(out_cost)

		if self.witness.IsNecessary(pair.From, pair.Via, pair.To, shortcut_cost) {
			out <- Created{
				Shortcut: structs.NewShortcut(pair.From, pair.To, pair.Via, shortcut_cost, pair.InEdge, pair.OutEdge),
				Pair:     pair,
			}
		}
	}
}

func (self *Worker) edgeCost(ref structs.EdgeRef) cost.Cost {
	if self.warmSet && self.warmRef == ref {
		return self.warmCost
	}
	c := self.explorer.GetEdgeCost(ref)
	self.warmRef = ref
	self.warmCost = c
	self.warmSet = true
	return c
}

func (self *Worker) explorerCost(ref structs.EdgeRef) cost.Cost {
	return self.explorer.GetEdgeCost(ref)
}
