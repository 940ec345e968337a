package domain

// ActivePath is an actor's current position in the tree: a fixed-capacity
// sequence of slots, slot 0 at the root's level, increasing index meaning
// increasing depth. While an actor is attached, slots [0, Depth()) hold a
// contiguous ancestor chain and every slot past that is empty.
//
// The path is mutated only by the transition engine; callers should treat it
// as read-only.
type ActivePath struct {
	slots []ID
}

// Attached reports whether the path has been allocated by an initial entry
// and not yet released.
func (p *ActivePath) Attached() bool {
	return p.slots != nil
}

// Reset allocates the path with one empty slot per tree level, discarding any
// previous contents.
func (p *ActivePath) Reset(height int) {
	p.slots = make([]ID, height)
}

// Release discards the slot storage. The actor must re-enter the machine
// before it can be ticked again.
func (p *ActivePath) Release() {
	p.slots = nil
}

// Capacity returns the number of slots (the tree height at allocation time).
func (p *ActivePath) Capacity() int {
	return len(p.slots)
}

// Depth returns the number of occupied slots.
func (p *ActivePath) Depth() int {
	for i, id := range p.slots {
		if id == None {
			return i
		}
	}
	return len(p.slots)
}

// At returns the identity at slot i, or None if i is out of range.
func (p *ActivePath) At(i int) ID {
	if i < 0 || i >= len(p.slots) {
		return None
	}
	return p.slots[i]
}

// Set writes an identity into slot i. Intended for the transition engine.
func (p *ActivePath) Set(i int, id ID) {
	if i >= 0 && i < len(p.slots) {
		p.slots[i] = id
	}
}

// Clear empties slot i. Intended for the transition engine.
func (p *ActivePath) Clear(i int) {
	p.Set(i, None)
}

// Contains reports whether id occupies any slot.
func (p *ActivePath) Contains(id ID) bool {
	if id == None {
		return false
	}
	for _, s := range p.slots {
		if s == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the occupied slots, root first.
func (p *ActivePath) IDs() []ID {
	ids := make([]ID, 0, p.Depth())
	for _, id := range p.slots {
		if id == None {
			break
		}
		ids = append(ids, id)
	}
	return ids
}
