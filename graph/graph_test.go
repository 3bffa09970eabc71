package graph

import (
	"testing"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
)

func buildTriangle() *Graph {
	g := NewGraph(2)
	g.AddEdge(0, 1, cost.Cost{1, 1})
	g.AddEdge(1, 2, cost.Cost{1, 1})
	g.AddEdge(0, 2, cost.Cost{5, 5})
	return g
}

func TestAddEdgeCreatesNodes(t *testing.T) {
	g := buildTriangle()
	if g.NodeCount() != 3 {
		t.Errorf("g.NodeCount() = %v; want 3", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("g.EdgeCount() = %v; want 3", g.EdgeCount())
	}
}

func TestForAdjacentEdgesForward(t *testing.T) {
	g := buildTriangle()
	explorer := g.GetGraphExplorer()

	var others []int32
	explorer.ForAdjacentEdges(0, FORWARD, func(ref structs.EdgeRef) {
		others = append(others, ref.OtherID)
	})
	if len(others) != 2 {
		t.Fatalf("len(others) = %v; want 2", len(others))
	}
}

func TestForAdjacentEdgesBackward(t *testing.T) {
	g := buildTriangle()
	explorer := g.GetGraphExplorer()

	var others []int32
	explorer.ForAdjacentEdges(2, BACKWARD, func(ref structs.EdgeRef) {
		others = append(others, ref.OtherID)
	})
	if len(others) != 2 {
		t.Fatalf("len(others) = %v; want 2", len(others))
	}
}

func TestRemoveNodeRemovesIncidentEdges(t *testing.T) {
	g := buildTriangle()
	g.RemoveNode(1)

	if g.IsNode(1) {
		t.Errorf("node 1 should be removed")
	}

	explorer := g.GetGraphExplorer()
	count := 0
	explorer.ForAdjacentEdges(0, FORWARD, func(structs.EdgeRef) { count++ })
	if count != 1 {
		t.Errorf("node 0 should have 1 remaining forward edge, got %v", count)
	}
}

func TestGetOtherNode(t *testing.T) {
	g := buildTriangle()
	explorer := g.GetGraphExplorer()
	ref := structs.CreateEdgeRef(0, 1)
	if explorer.GetOtherNode(ref, 0) != 1 {
		t.Errorf("GetOtherNode(ref, 0) = %v; want 1", explorer.GetOtherNode(ref, 0))
	}
}
