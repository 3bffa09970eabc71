package structs

import (
	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/geo"
)

//*******************************************
// base graph structs
//*******************************************

type Node struct {
	Loc geo.Coord
}

// Edge is a directed original-graph edge, node_a -> node_b, carrying a
// D-dimensional cost.
type Edge struct {
	NodeA int32
	NodeB int32
	Cost  cost.Cost
}

//*******************************************
// edgeref - tagged union via byte discriminant
//*******************************************

// EdgeRef points at either an original edge or a shortcut, matching the
// teacher's _Type convention: values below 100 address the original edge
// array, values at/above 100 address the shortcut registry.
type EdgeRef struct {
	EdgeID  int32
	_Type   byte
	OtherID int32
}

const (
	RefEdge     byte = 0
	RefShortcut byte = 100
)

func (self EdgeRef) IsEdge() bool {
	return self._Type < RefShortcut
}
func (self EdgeRef) IsShortcut() bool {
	return self._Type >= RefShortcut
}

func CreateEdgeRef(edge, other int32) EdgeRef {
	return EdgeRef{EdgeID: edge, _Type: RefEdge, OtherID: other}
}
func CreateShortcutRef(edge, other int32) EdgeRef {
	return EdgeRef{EdgeID: edge, _Type: RefShortcut, OtherID: other}
}

//*******************************************
// shortcut - contracted edge, references its two constituent edges
//*******************************************

// Shortcut is a contraction-introduced edge replacing the path
// from -> via -> to. ChildA/ChildB are EdgeRefs into the combined
// edge+shortcut registry, so a shortcut's children may themselves be
// shortcuts (nested contraction across levels).
type Shortcut struct {
	From   int32
	To     int32
	Via    int32
	Cost   cost.Cost
	ChildA EdgeRef
	ChildB EdgeRef
}

func NewShortcut(from, to, via int32, c cost.Cost, child_a, child_b EdgeRef) Shortcut {
	return Shortcut{From: from, To: to, Via: via, Cost: c, ChildA: child_a, ChildB: child_b}
}

//*******************************************
// edge pair - the unit of work dispatched to the queue
//*******************************************

// EdgePair is the (in-edge, out-edge) pair meeting at a to-be-contracted
// node, the unit the WorkQueue hands to a Worker.
type EdgePair struct {
	InEdge  EdgeRef
	OutEdge EdgeRef
	Via     int32
	From    int32
	To      int32
}

//*******************************************
// route - a probe's resulting path with its multiplicity
//*******************************************

// RouteWithCount is the result of a ShortestPathProbe: the best route's
// D-dimensional cost, how many equal-scalarized-cost alternatives share
// it (PathCount > 1 signals ambiguity the witness search must resolve
// conservatively), and the interior nodes of one such route (excluding
// its endpoints) so the witness search can tell whether the route
// passes through a node that is itself about to be contracted.
type RouteWithCount struct {
	Cost      cost.Cost
	PathCount int
	Path      []int32
}
