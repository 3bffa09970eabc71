package main

import (
	"os"

	"github.com/Stunkymonkey/multi-ch-constructor/contractor"
	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/geo"
	"github.com/Stunkymonkey/multi-ch-constructor/graph"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
	. "github.com/Stunkymonkey/multi-ch-constructor/util"
)

// loadGraph reads a binary graph file: a header (dim, nodecount, edgecount) followed by node coordinates and
// directed edges with their D-dimensional costs, matching the
// BufferReader/Write[T]-based persistence style of the teacher's
// comps/graph_base.go _Load/_Store methods.
func loadGraph(path string, dim int) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reader := NewBufferReader(data)

	file_dim := int(Read[int32](reader))
	if file_dim != dim {
		dim = file_dim
	}
	node_count := int(Read[int32](reader))
	edge_count := int(Read[int32](reader))

	g := graph.NewGraph(dim)
	for i := 0; i < node_count; i++ {
		lon := Read[float32](reader)
		lat := Read[float32](reader)
		g.AddNode(int32(i), geo.Coord{lon, lat})
	}
	for i := 0; i < edge_count; i++ {
		node_a := Read[int32](reader)
		node_b := Read[int32](reader)
		c := make(cost.Cost, dim)
		for d := 0; d < dim; d++ {
			c[d] = float64(Read[float32](reader))
		}
		g.AddEdge(node_a, node_b, c)
	}
	return g, nil
}

// storeHierarchy writes the contraction output for a downstream CH query
// engine (out of scope here, spec.md §6): the cost dimension, the node
// count, one int16 level per node as assigned by the HierarchyDriver,
// then the registry's shortcuts. The base graph's node coordinates and
// edges are not included in this file.
func storeHierarchy(path string, g *graph.Graph, driver *contractor.HierarchyDriver) error {
	writer := NewBufferWriter()

	Write(writer, int32(g.Dim()))
	Write(writer, int32(g.NodeCount()))

	for i := 0; i < g.NodeCount(); i++ {
		Write(writer, int16(driver.NodeLevel(int32(i))))
	}

	registry := driver.Registry()
	shortcut_count := registry.Count()
	Write(writer, int32(shortcut_count))
	for i := 0; i < shortcut_count; i++ {
		sc := registry.Get(int32(i))
		writeShortcut(writer, sc)
	}

	return os.WriteFile(path, writer.Bytes(), 0644)
}

func writeShortcut(writer BufferWriter, sc structs.Shortcut) {
	Write(writer, sc.From)
	Write(writer, sc.To)
	Write(writer, sc.Via)
	Write(writer, int32(len(sc.Cost)))
	for _, v := range sc.Cost {
		Write(writer, float32(v))
	}
}
