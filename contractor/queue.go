package contractor

import "github.com/Stunkymonkey/multi-ch-constructor/structs"

// WorkQueue is the bounded multi-producer/multi-consumer channel of
// EdgePairs a LevelContractor hands to its Worker pool, matching
// spec.md's WorkQueue component. Bounding its capacity caps how far
// producers can run ahead of the slowest worker within a level.
type WorkQueue struct {
	pairs chan structs.EdgePair
}

func NewWorkQueue(capacity int) *WorkQueue {
	return &WorkQueue{pairs: make(chan structs.EdgePair, capacity)}
}

func (self *WorkQueue) Push(pair structs.EdgePair) {
	self.pairs <- pair
}

func (self *WorkQueue) Close() {
	close(self.pairs)
}

func (self *WorkQueue) Chan() <-chan structs.EdgePair {
	return self.pairs
}
