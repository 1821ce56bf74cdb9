// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import "github.com/google/btree"

const pendingDegree = 16

// departure is a multiset entry; seq keeps equal times distinct in the tree.
type departure struct {
	at  Timestamp
	seq uint64
}

func departureLess(a, b departure) bool {
	if a.at != b.at {
		return a.at < b.at
	}
	return a.seq < b.seq
}

// pendingDepartures is an ordered multiset of the departure times of vehicles
// still parked.
type pendingDepartures struct {
	tree *btree.BTreeG[departure]
	seq  uint64
}

func newPendingDepartures() *pendingDepartures {
	return &pendingDepartures{tree: btree.NewG(pendingDegree, departureLess)}
}

func (p *pendingDepartures) push(at Timestamp) {
	p.seq++
	p.tree.ReplaceOrInsert(departure{at: at, seq: p.seq})
}

// min returns the earliest pending departure.
func (p *pendingDepartures) min() (Timestamp, bool) {
	d, ok := p.tree.Min()
	return d.at, ok
}

func (p *pendingDepartures) popMin() (Timestamp, bool) {
	d, ok := p.tree.DeleteMin()
	return d.at, ok
}

func (p *pendingDepartures) len() int {
	return p.tree.Len()
}
