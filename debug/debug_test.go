package debug

import (
	"errors"
	"testing"
)

// Output goes to stderr and is not captured; the calls must not panic.
func TestDropError(t *testing.T) {
	DropError("LOAD", errors.New("phonebook.db: no such table: contacts"))
	DropError("MARK", nil)
}

func TestDropMessage(t *testing.T) {
	DropMessage("GROW", "69 -> 138 slots, 69 keys")
}
