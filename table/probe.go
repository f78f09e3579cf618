package table

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PROBE RESOLUTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// natural returns the slot a key's probe sequence starts from.
//
//go:inline
func (t *Table[K, V]) natural(key K) int {
	return int(t.hash.Hash(key) % uint64(len(t.slots)))
}

// next advances a slot index by one, wrapping at capacity.
//
//go:inline
func (t *Table[K, V]) next(i int) int {
	i++
	if i == len(t.slots) {
		return 0
	}
	return i
}

// locate walks forward from the key's natural slot and stops at the first
// slot that is Empty or holds key. It never mutates the table.
//
// RETURN VALUES:
//   - (i, true):  slot i holds key
//   - (i, false): key is absent and slot i is the Empty slot it would occupy
//   - (-1, false): key is absent and every slot is Taken
//
// The walk visits each slot at most once, so a completely full table cannot
// spin forever on a miss.
func (t *Table[K, V]) locate(key K) (int, bool) {
	i := t.natural(key)
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		if s.state == empty {
			return i, false
		}
		if s.key == key {
			return i, true
		}
		i = t.next(i)
	}
	return -1, false
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// BACK-SHIFT DELETION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// backShift repairs the probe chain after slot hole was emptied.
//
// ALGORITHM:
//
//	Scan forward from the hole through the contiguous run of Taken slots.
//	An entry at j whose natural slot k lies cyclically in (hole, j] is still
//	reachable without the hole and stays put. Any other entry would be cut
//	off from k by the hole, so it moves into the hole and j becomes the new
//	hole. The scan ends at the first Empty slot; nothing past it can have
//	probed through the hole.
func (t *Table[K, V]) backShift(hole int) {
	for j := t.next(hole); t.slots[j].state == taken; j = t.next(j) {
		if cyclicBetween(hole, t.natural(t.slots[j].key), j) {
			continue
		}
		t.slots[hole] = t.slots[j]
		t.slots[j] = slot[K, V]{}
		hole = j
	}
}

// cyclicBetween reports whether k lies in the half-open cyclic interval
// (lo, hi] of slot indices.
//
//go:nosplit
//go:inline
func cyclicBetween(lo, k, hi int) bool {
	if lo <= hi {
		return lo < k && k <= hi
	}
	return lo < k || k <= hi
}

// distance is how many steps slot i lies past natural slot k.
//
//go:inline
func (t *Table[K, V]) distance(k, i int) int {
	if i >= k {
		return i - k
	}
	return i + len(t.slots) - k
}
