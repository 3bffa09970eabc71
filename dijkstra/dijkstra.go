// Package dijkstra implements the NormalDijkstra external collaborator
// (spec.md C2 ShortestPathProbe's underlying search): a scalarized,
// multi-criteria shortest-path search, grounded on the local search in
// the teacher's preproc/pre_process_ch.go (_RunLocalSearch /
// _FindNeighbours), but operating on D-dimensional cost.Cost scalarized
// through a cost.Config instead of a single int32 weight, and run to
// true optimality rather than bounded by hop count: a witness more than
// a few hops away is exactly as disqualifying as one nearby, so nothing
// short of the target being unreachable may stop the search early.
package dijkstra

import (
	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
	. "github.com/Stunkymonkey/multi-ch-constructor/util"
)

// Dijkstra runs repeated local searches against a single graph. Not
// thread-safe: each Worker goroutine owns its own instance, matching the
// teacher's "not thread safe, use only one instance per thread" contract
// on graph explorers.
type Dijkstra struct {
	graph    graph.IGraph
	explorer graph.IGraphExplorer
	dim      int
}

func NewDijkstra(g graph.IGraph) *Dijkstra {
	return &Dijkstra{
		graph:    g,
		explorer: g.GetGraphExplorer(),
		dim:      g.Dim(),
	}
}

type settled struct {
	scalar  float64
	cost    cost.Cost
	pred    int32
	hasPred bool
}

// ShortestPath searches forward from start, never relaxing through the
// avoid node (the node currently being contracted), and returns the
// D-dimensional cost of the best route to target under config, how
// many distinct routes truly tie that scalarized cost
// (RouteWithCount.PathCount), and the interior nodes of one such route.
// The witness search needs both: PathCount to detect ambiguous ties,
// and the route's interior nodes to tell whether it passes through a
// node that is itself about to be contracted this level.
func (self *Dijkstra) ShortestPath(start, target, avoid int32, config cost.Config) (structs.RouteWithCount, bool) {
	dist := NewDict[int32, settled](16)
	visited := NewDict[int32, bool](16)
	order := make([]int32, 0, 16)

	queue := NewPriorityQueue[int32, float64]()
	dist[start] = settled{scalar: 0, cost: cost.NewCost(self.dim)}
	queue.Push(start, 0)

	found := false
	var best_scalar float64

	for queue.Len() > 0 {
		node, d := queue.Pop()
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)

		if found && d > best_scalar+cost.COST_ACCURACY {
			break
		}
		if node == target {
			if !found {
				found = true
				best_scalar = d
			}
			continue
		}
		if node != start && node == avoid {
			continue
		}

		cur := dist[node]
		self.explorer.ForAdjacentEdges(node, graph.FORWARD, func(ref structs.EdgeRef) {
			other := ref.OtherID
			if other == avoid && other != target {
				return
			}
			edge_cost := self.explorer.GetEdgeCost(ref)
			next_cost := cur.cost.Add(edge_cost)
			nd := cur.scalar + config.Scalarize(edge_cost)
			if old, ok := dist[other]; !ok || nd < old.scalar-cost.COST_ACCURACY {
				dist[other] = settled{scalar: nd, cost: next_cost, pred: node, hasPred: true}
				queue.Push(other, nd)
			}
		})
	}

	if !found {
		return structs.RouteWithCount{}, false
	}

	return structs.RouteWithCount{
		Cost:      dist[target].cost,
		PathCount: countTiedPaths(self, dist, order, start, target, avoid, config, best_scalar),
		Path:      reconstructInterior(dist, start, target),
	}, true
}

// countTiedPaths counts the distinct routes whose scalarized cost ties
// best_scalar within COST_ACCURACY, by replaying every edge between
// nodes already settled by the main search in non-decreasing distance
// order and propagating a path count along every edge whose endpoints'
// finalized distances are consistent with it, not just along the one
// predecessor chain the main search happened to keep. Processing
// settled nodes in that order guarantees each node's count is final
// before it's used to extend any node further out, since no edge has
// negative cost.
func countTiedPaths(self *Dijkstra, dist Dict[int32, settled], order []int32, start, target, avoid int32, config cost.Config, best_scalar float64) int {
	count := NewDict[int32, int](16)
	count[start] = 1

	for _, node := range order {
		s := dist[node]
		if s.scalar > best_scalar+cost.COST_ACCURACY {
			break
		}
		if node == target {
			continue
		}
		if node != start && node == avoid {
			continue
		}
		self.explorer.ForAdjacentEdges(node, graph.FORWARD, func(ref structs.EdgeRef) {
			other := ref.OtherID
			if other == avoid && other != target {
				return
			}
			next, ok := dist[other]
			if !ok {
				return
			}
			edge_cost := self.explorer.GetEdgeCost(ref)
			nd := s.scalar + config.Scalarize(edge_cost)
			if nd >= next.scalar-cost.COST_ACCURACY && nd <= next.scalar+cost.COST_ACCURACY {
				count[other] += count[node]
			}
		})
	}

	return count[target]
}

// reconstructInterior walks the predecessor chain of one best-cost route
// from target back to start and returns its interior nodes (excluding
// both endpoints) in start-to-target order.
func reconstructInterior(dist Dict[int32, settled], start, target int32) []int32 {
	var interior []int32
	node := target
	for {
		s := dist[node]
		if !s.hasPred {
			break
		}
		node = s.pred
		if node == start {
			break
		}
		interior = append(interior, node)
	}
	for i, j := 0, len(interior)-1; i < j; i, j = i+1, j-1 {
		interior[i], interior[j] = interior[j], interior[i]
	}
	return interior
}
