package contractor

import (
	"sort"
	"sync"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/Stunkymonkey/multi-ch-constructor/structs"
)

// Registry is the append-only shortcut edge registry (spec.md's "Edge
// registry" external interface): every shortcut ever created across
// every level lives here, addressed by EdgeRefs tagged RefShortcut,
// exactly as the original administered new shortcuts into a single
// growing edge array shared across contraction rounds.
type Registry struct {
	mu        sync.Mutex
	shortcuts []structs.Shortcut
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (self *Registry) Get(id int32) structs.Shortcut {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.shortcuts[id]
}

func (self *Registry) Count() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.shortcuts)
}

// AdministerShortcuts appends a batch of freshly created shortcuts,
// sorting by (From, To, Cost) and deduplicating shortcuts with the same
// From and To whose costs agree within cost.COST_ACCURACY (Via is not
// compared), the way Contractor::contract did before committing
// a level's shortcuts, since independent worker goroutines can discover
// the same shortcut from both directions. It returns one EdgeRef per
// input shortcut, pointing at its deduplicated registry slot.
func (self *Registry) AdministerShortcuts(batch []structs.Shortcut) []structs.EdgeRef {
	self.mu.Lock()
	defer self.mu.Unlock()

	order := make([]int, len(batch))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return lessShortcut(batch[order[i]], batch[order[j]])
	})

	refs := make([]structs.EdgeRef, len(batch))
	var last_id int32 = -1
	for _, idx := range order {
		sc := batch[idx]
		if last_id == -1 || !sameShortcut(self.shortcuts[last_id], sc) {
			self.shortcuts = append(self.shortcuts, sc)
			last_id = int32(len(self.shortcuts) - 1)
		}
		refs[idx] = structs.CreateShortcutRef(last_id, sc.To)
	}
	return refs
}

func lessShortcut(a, b structs.Shortcut) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	for i := range a.Cost {
		if a.Cost[i] != b.Cost[i] {
			return a.Cost[i] < b.Cost[i]
		}
	}
	return false
}

func sameShortcut(a, b structs.Shortcut) bool {
	if a.From != b.From || a.To != b.To {
		return false
	}
	return cost.Cost(a.Cost).Equals(cost.Cost(b.Cost))
}
