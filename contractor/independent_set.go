package contractor

import (
	"sort"

	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
)

// IndependentSetSelector picks which uncontracted nodes to contract in a
// single level: candidates are ranked by in-degree*out-degree (cheap
// nodes first), greedily accepted into the set as long as none of their
// neighbours is already in it, then the acceptance list is cut down to
// its cheapest quartile - mirroring Contractor::independentSet/reduce,
// which builds the same degree-product ranking and keeps only a quarter
// of it per round so a level's node count stays bounded and two
// interdependent nodes are unlikely to land in the same batch.
type IndependentSetSelector struct {
	graph graph.IGraph
}

func NewIndependentSetSelector(g graph.IGraph) *IndependentSetSelector {
	return &IndependentSetSelector{graph: g}
}

func (self *IndependentSetSelector) Select(candidates []int32) []int32 {
	explorer := self.graph.GetGraphExplorer()

	type scored struct {
		node  int32
		score int64
	}
	scores := make([]scored, len(candidates))
	for i, n := range candidates {
		var in_deg, out_deg int64
		explorer.ForAdjacentEdges(n, graph.FORWARD, func(structs.EdgeRef) { out_deg++ })
		explorer.ForAdjacentEdges(n, graph.BACKWARD, func(structs.EdgeRef) { in_deg++ })
		scores[i] = scored{node: n, score: in_deg * out_deg}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score < scores[j].score })

	in_set := make(map[int32]bool, len(candidates))
	selected := make([]int32, 0, len(candidates))
	for _, s := range scores {
		if hasSelectedNeighbour(explorer, s.node, in_set) {
			continue
		}
		in_set[s.node] = true
		selected = append(selected, s.node)
	}

	return reduceToQuartile(selected)
}

func hasSelectedNeighbour(explorer graph.IGraphExplorer, node int32, in_set map[int32]bool) bool {
	found := false
	explorer.ForAdjacentEdges(node, graph.FORWARD, func(ref structs.EdgeRef) {
		if in_set[ref.OtherID] {
			found = true
		}
	})
	explorer.ForAdjacentEdges(node, graph.BACKWARD, func(ref structs.EdgeRef) {
		if in_set[ref.OtherID] {
			found = true
		}
	})
	return found
}

// reduceToQuartile keeps the cheapest quarter of an already
// score-ascending selection.
func reduceToQuartile(selected []int32) []int32 {
	if len(selected) < 4 {
		return selected
	}
	quartile := len(selected) / 4
	return selected[:quartile]
}
