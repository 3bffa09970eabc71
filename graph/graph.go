// Package graph implements the Graph external-collaborator contract the
// contractor package builds against: an in-memory, dictionary-backed
// multi-criteria graph, adapted from the teacher's DictBase
// test-graph implementation but generalized from a single int32 weight
// per edge to a D-dimensional cost.Cost.
package graph

import (
	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/geo"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
	. "github.com/Stunkymonkey/multi-ch-constructor/util"
)

//*******************************************
// graph interfaces
//*******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) geo.Coord
	Dim() int

	AddNode(id int32, point geo.Coord)
	AddEdge(node_a, node_b int32, c cost.Cost) int32
	RemoveNode(id int32)
	RemoveEdge(id int32)
}

// not thread safe, use only one instance per goroutine
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for
	// every edge. direction tells the traversal direction (FORWARD means
	// outgoing edges, BACKWARD ingoing edges).
	ForAdjacentEdges(node int32, dir Direction, callback func(structs.EdgeRef))
	GetEdgeCost(edge structs.EdgeRef) cost.Cost
	GetOtherNode(edge structs.EdgeRef, node int32) int32
}

//*******************************************
// dictionary-backed graph
//*******************************************

// Graph is a dictionary-backed multi-criteria graph. Node and edge ids
// are caller-assigned int32s; nodes/edges can be added and removed
// freely, which the contractor relies on to retire nodes level by level
// without renumbering the rest of the graph.
type Graph struct {
	dim int

	nodes        Dict[int32, structs.Node]
	edges        Dict[int32, structs.Edge]
	fwd_edgerefs Dict[int32, List[structs.EdgeRef]]
	bwd_edgerefs Dict[int32, List[structs.EdgeRef]]

	max_node_id int32
	max_edge_id int32
}

func NewGraph(dim int) *Graph {
	return &Graph{
		dim: dim,

		nodes:        NewDict[int32, structs.Node](16),
		edges:        NewDict[int32, structs.Edge](16),
		fwd_edgerefs: NewDict[int32, List[structs.EdgeRef]](16),
		bwd_edgerefs: NewDict[int32, List[structs.EdgeRef]](16),
	}
}

func (self *Graph) Dim() int {
	return self.dim
}
func (self *Graph) NodeCount() int {
	return int(self.max_node_id)
}
func (self *Graph) EdgeCount() int {
	return int(self.max_edge_id)
}
func (self *Graph) IsNode(node int32) bool {
	return self.nodes.ContainsKey(node)
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *Graph) IsEdge(edge int32) bool {
	return self.edges.ContainsKey(edge)
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}
func (self *Graph) GetNodeDegree(node int32, dir Direction) int16 {
	if dir == FORWARD {
		return int16(self.fwd_edgerefs[node].Length())
	}
	return int16(self.bwd_edgerefs[node].Length())
}
func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &GraphExplorer{graph: self}
}

func (self *Graph) AddNode(id int32, point geo.Coord) {
	if self.nodes.ContainsKey(id) {
		panic("node already exists")
	}
	if id >= self.max_node_id {
		self.max_node_id = id + 1
	}
	self.nodes[id] = structs.Node{Loc: point}
	self.fwd_edgerefs[id] = NewList[structs.EdgeRef](2)
	self.bwd_edgerefs[id] = NewList[structs.EdgeRef](2)
}

// AddEdge inserts a directed edge node_a -> node_b with the given cost,
// auto-creating endpoints that don't exist yet, and returns its id.
func (self *Graph) AddEdge(node_a, node_b int32, c cost.Cost) int32 {
	if !self.nodes.ContainsKey(node_a) {
		self.AddNode(node_a, geo.Coord{})
	}
	if !self.nodes.ContainsKey(node_b) {
		self.AddNode(node_b, geo.Coord{})
	}
	id := self.max_edge_id
	self.max_edge_id = id + 1
	self.edges[id] = structs.Edge{NodeA: node_a, NodeB: node_b, Cost: c}

	fwd := self.fwd_edgerefs[node_a]
	fwd.Add(structs.CreateEdgeRef(id, node_b))
	self.fwd_edgerefs[node_a] = fwd

	bwd := self.bwd_edgerefs[node_b]
	bwd.Add(structs.CreateEdgeRef(id, node_a))
	self.bwd_edgerefs[node_b] = bwd

	return id
}

func (self *Graph) RemoveNode(id int32) {
	if !self.nodes.ContainsKey(id) {
		panic("node doesn't exist")
	}
	// RemoveEdge shrinks these lists in place, so iterate over copies.
	for _, ref := range append(List[structs.EdgeRef](nil), self.fwd_edgerefs[id]...) {
		self.RemoveEdge(ref.EdgeID)
	}
	self.fwd_edgerefs.Delete(id)
	for _, ref := range append(List[structs.EdgeRef](nil), self.bwd_edgerefs[id]...) {
		self.RemoveEdge(ref.EdgeID)
	}
	self.bwd_edgerefs.Delete(id)
	self.nodes.Delete(id)
}

func (self *Graph) RemoveEdge(id int32) {
	if !self.edges.ContainsKey(id) {
		panic("edge doesn't exist")
	}
	edge := self.edges[id]

	fwd := self.fwd_edgerefs[edge.NodeA]
	for i, ref := range fwd {
		if ref.EdgeID == id {
			fwd.Remove(i)
			break
		}
	}
	self.fwd_edgerefs[edge.NodeA] = fwd

	bwd := self.bwd_edgerefs[edge.NodeB]
	for i, ref := range bwd {
		if ref.EdgeID == id {
			bwd.Remove(i)
			break
		}
	}
	self.bwd_edgerefs[edge.NodeB] = bwd

	self.edges.Delete(id)
}

//*******************************************
// graph explorer
//*******************************************

type GraphExplorer struct {
	graph *Graph
}

func (self *GraphExplorer) ForAdjacentEdges(node int32, dir Direction, callback func(structs.EdgeRef)) {
	var refs List[structs.EdgeRef]
	if dir == FORWARD {
		refs = self.graph.fwd_edgerefs[node]
	} else {
		refs = self.graph.bwd_edgerefs[node]
	}
	for _, ref := range refs {
		callback(ref)
	}
}
func (self *GraphExplorer) GetEdgeCost(edge structs.EdgeRef) cost.Cost {
	return self.graph.edges[edge.EdgeID].Cost
}
func (self *GraphExplorer) GetOtherNode(edge structs.EdgeRef, node int32) int32 {
	e := self.graph.edges[edge.EdgeID]
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}
