package contractor

import (
	"testing"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/graph"
)

// path graph 0-1-2-3-4: the interior nodes 1, 2 and 3 all share degree
// product 1 and no two selected nodes should end up adjacent.
func buildPathGraph() *graph.Graph {
	g := graph.NewGraph(1)
	g.AddEdge(0, 1, cost.Cost{1})
	g.AddEdge(1, 2, cost.Cost{1})
	g.AddEdge(2, 3, cost.Cost{1})
	g.AddEdge(3, 4, cost.Cost{1})
	return g
}

func TestIndependentSetSelectorExcludesAdjacentNodes(t *testing.T) {
	g := buildPathGraph()
	selector := NewIndependentSetSelector(g)
	selected := selector.Select([]int32{0, 1, 2, 3, 4})

	in_set := make(map[int32]bool)
	for _, n := range selected {
		in_set[n] = true
	}
	// no two adjacent path nodes should both be selected
	adjacentPairs := [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	for _, pair := range adjacentPairs {
		if in_set[pair[0]] && in_set[pair[1]] {
			t.Errorf("selection contains adjacent nodes %v and %v", pair[0], pair[1])
		}
	}
}

// spec.md §4.5 step 4: keep the whole set when size < 4, not <= 4, so
// a set of exactly four is cut to its quartile 4/4 = 1.
func TestReduceToQuartileCutsToOneAtExactlyFour(t *testing.T) {
	selected := []int32{10, 20, 30, 40}
	reduced := reduceToQuartile(selected)
	if len(reduced) != 1 {
		t.Errorf("reduceToQuartile(size=4) kept %d nodes; want 1", len(reduced))
	}
}

func TestReduceToQuartileCutsDownLargerSets(t *testing.T) {
	selected := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	reduced := reduceToQuartile(selected)
	if len(reduced) != 2 {
		t.Errorf("reduceToQuartile(size=8) kept %d nodes; want 2", len(reduced))
	}
}
