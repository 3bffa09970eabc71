package contractor

import (
	"testing"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
)

func TestAdministerShortcutsDeduplicates(t *testing.T) {
	registry := NewRegistry()
	a := structs.NewShortcut(0, 2, 1, cost.Cost{2, 2}, structs.CreateEdgeRef(0, 1), structs.CreateEdgeRef(1, 2))
	b := structs.NewShortcut(0, 2, 1, cost.Cost{2, 2}, structs.CreateEdgeRef(0, 1), structs.CreateEdgeRef(1, 2))
	c := structs.NewShortcut(3, 4, 1, cost.Cost{9, 9}, structs.CreateEdgeRef(2, 3), structs.CreateEdgeRef(3, 4))

	refs := registry.AdministerShortcuts([]structs.Shortcut{a, b, c})

	if registry.Count() != 2 {
		t.Fatalf("registry.Count() = %v; want 2", registry.Count())
	}
	if refs[0].EdgeID != refs[1].EdgeID {
		t.Errorf("duplicate shortcuts should dedupe to the same ref, got %v and %v", refs[0], refs[1])
	}
	if refs[2].EdgeID == refs[0].EdgeID {
		t.Errorf("distinct shortcut should not dedupe with the others")
	}
}

func TestAdministerShortcutsAllUnique(t *testing.T) {
	registry := NewRegistry()
	batch := []structs.Shortcut{
		structs.NewShortcut(0, 1, 5, cost.Cost{1}, structs.CreateEdgeRef(0, 5), structs.CreateEdgeRef(1, 1)),
		structs.NewShortcut(1, 2, 5, cost.Cost{1}, structs.CreateEdgeRef(2, 5), structs.CreateEdgeRef(3, 2)),
	}
	refs := registry.AdministerShortcuts(batch)
	if registry.Count() != 2 {
		t.Fatalf("registry.Count() = %v; want 2", registry.Count())
	}
	if refs[0].EdgeID == refs[1].EdgeID {
		t.Errorf("distinct shortcuts should not share a ref")
	}
}
