// ════════════════════════════════════════════════════════════════════════════════════════════════
// 🧮 LINEAR-PROBING HASH TABLE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Open-Addressing Hash Table
// Component: Growable Key → Value Table
//
// Description:
//   Generic open-addressing table with first-fit linear probing. Every key starts probing at
//   its natural slot (digest mod capacity) and walks forward, wrapping at the end, until it
//   meets itself or an Empty slot. Removal back-shifts the trailing probe chain so that no
//   Empty gap ever separates an entry from its natural slot.
//
// Design Principles:
//   - Reads never grow the table; only Insert of an absent key into a full table does
//   - Growth doubles capacity, rebuilding into a fresh array before swapping it in
//   - No tombstones: a removed slot is Empty again immediately
//   - Single goroutine only; callers serialize access externally
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package table

import (
	"iter"

	"openhash/constants"
	"openhash/debug"
	"openhash/hasher"
	"openhash/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TYPE DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Table maps keys of type K to values of type V.
//
// INVARIANTS:
//
//	taken never exceeds len(slots).
//	At most one Taken slot holds any given key.
//	Every Taken entry is reachable from its natural slot through Taken slots only.
//
// A Table is not safe for concurrent use. Mutation (Insert, Remove, Clear)
// requires exclusive access for the duration of the call.
type Table[K comparable, V any] struct {
	slots []slot[K, V]
	taken int
	hash  hasher.Hasher[K]
	trace bool
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSTRUCTOR
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// New allocates a table of Empty slots. The capacity defaults to
// constants.DefaultCapacity and may be set with WithCapacity.
// New panics if h is nil.
func New[K comparable, V any](h hasher.Hasher[K], opts ...Option) *Table[K, V] {
	if h == nil {
		panic("table: nil hasher")
	}
	c := buildConfig(opts)
	return &Table[K, V]{
		slots: make([]slot[K, V], c.capacity),
		hash:  h,
		trace: c.trace,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Insert stores val under key.
//
// RETURN VALUES:
//   - For new keys: the zero V and false
//   - For existing keys: the replaced value and true; the stored key is kept
//
// Inserting an absent key into a full table first doubles the capacity.
func (t *Table[K, V]) Insert(key K, val V) (V, bool) {
	i, found := t.locate(key)
	if found {
		old := t.slots[i].val
		t.slots[i].val = val
		return old, true
	}

	if t.taken == len(t.slots) {
		t.extend()
		i, _ = t.locate(key)
	}

	t.slots[i] = slot[K, V]{key: key, val: val, state: taken}
	t.taken++
	var zero V
	return zero, false
}

// Get returns the value stored under key. It never changes the table.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if i, found := t.locate(key); found {
		return t.slots[i].val, true
	}
	var zero V
	return zero, false
}

// GetRef returns a pointer to the value stored under key, or nil.
// ⚠️ The pointer is invalidated by the next Insert, Remove or Clear.
func (t *Table[K, V]) GetRef(key K) *V {
	if i, found := t.locate(key); found {
		return &t.slots[i].val
	}
	return nil
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, found := t.locate(key)
	return found
}

// Remove deletes key and returns the value it held. Removing an absent key
// returns the zero V and false and leaves the table untouched.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	i, found := t.locate(key)
	if !found {
		var zero V
		return zero, false
	}

	val := t.slots[i].val
	t.slots[i] = slot[K, V]{}
	t.taken--
	t.backShift(i)
	return val, true
}

// Clear empties every slot and keeps the current capacity.
func (t *Table[K, V]) Clear() {
	clear(t.slots)
	t.taken = 0
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// GROWTH
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// extend rebuilds the table into a slot array GrowthFactor times larger.
// Natural slots depend on capacity, so every Taken entry is re-inserted in
// slot order; the new array only replaces the old one once it is complete.
func (t *Table[K, V]) extend() {
	grown := &Table[K, V]{
		slots: make([]slot[K, V], len(t.slots)*constants.GrowthFactor),
		hash:  t.hash,
		trace: t.trace,
	}
	for i := range t.slots {
		if s := &t.slots[i]; s.state == taken {
			grown.Insert(s.key, s.val)
		}
	}

	if t.trace {
		debug.DropMessage("GROW", utils.Itoa(len(t.slots))+" -> "+utils.Itoa(len(grown.slots))+
			" slots, "+utils.Itoa(grown.taken)+" keys")
	}
	*t = *grown
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INSPECTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Len returns the number of Taken slots.
func (t *Table[K, V]) Len() int { return t.taken }

// Cap returns the slot array length.
func (t *Table[K, V]) Cap() int { return len(t.slots) }

// LoadFactor returns Len()/Cap().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.taken) / float64(len(t.slots))
}

// MaxProbe returns the longest distance of any entry from its natural slot.
// Zero means every key sits exactly where it hashes.
func (t *Table[K, V]) MaxProbe() int {
	longest := 0
	for i := range t.slots {
		if t.slots[i].state != taken {
			continue
		}
		if d := t.distance(t.natural(t.slots[i].key), i); d > longest {
			longest = d
		}
	}
	return longest
}

// All yields every entry in slot order. The table must not be modified
// while ranging.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			if t.slots[i].state != taken {
				continue
			}
			if !yield(t.slots[i].key, t.slots[i].val) {
				return
			}
		}
	}
}

// Dump returns a snapshot of every entry in slot order. Diagnostic only:
// the order carries no meaning beyond slot positions.
func (t *Table[K, V]) Dump() []Pair[K, V] {
	out := make([]Pair[K, V], 0, t.taken)
	for k, v := range t.All() {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}
