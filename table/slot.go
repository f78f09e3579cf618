package table

// state tags a slot as holding nothing or exactly one entry.
type state uint8

const (
	empty state = iota
	taken
)

// slot is one position in the slot array. Empty slots are always the zero
// slot: a removal resets the whole struct so no stale key or value lingers.
type slot[K comparable, V any] struct {
	key   K
	val   V
	state state
}

// Pair is a key/value snapshot returned by Dump.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
