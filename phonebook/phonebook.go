// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: phonebook.go — Name → phone number book on top of table.Table
//
// Purpose:
//   - Shows the table in use: contacts keyed by name, numbers as values.
//   - Loads contacts from SQLite or JSON and dumps them back out as JSON.
//
// Notes:
//   - Names hash with djb2 unless another string Hasher is supplied.
//   - A Book inherits the table's single-goroutine contract.
// ─────────────────────────────────────────────────────────────────────────────

package phonebook

import (
	"strings"

	"openhash/constants"
	"openhash/hasher"
	"openhash/table"
)

// Contact is one phone book row.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Book stores one phone number per name.
type Book struct {
	entries *table.Table[string, string]
}

// New returns an empty Book keyed with the djb2 digest.
func New(opts ...table.Option) *Book {
	return NewWithHasher(hasher.String{}, opts...)
}

// NewWithHasher returns an empty Book keyed with h.
func NewWithHasher(h hasher.Hasher[string], opts ...table.Option) *Book {
	return &Book{entries: table.New[string, string](h, opts...)}
}

// Add stores c, returning the number it replaced if the name was known.
func (b *Book) Add(c Contact) (string, bool) {
	return b.entries.Insert(c.Name, c.Phone)
}

// AddAll stores every contact in order and returns how many names were new.
func (b *Book) AddAll(cs []Contact) int {
	added := 0
	for _, c := range cs {
		if _, replaced := b.Add(c); !replaced {
			added++
		}
	}
	return added
}

// Lookup returns the number stored for name.
func (b *Book) Lookup(name string) (string, bool) {
	return b.entries.Get(name)
}

// Forget removes name and returns the number it had.
func (b *Book) Forget(name string) (string, bool) {
	return b.entries.Remove(name)
}

// Len returns the number of stored names.
func (b *Book) Len() int { return b.entries.Len() }

// Table exposes the underlying table for inspection.
func (b *Book) Table() *table.Table[string, string] { return b.entries }

// Entries returns every contact in slot order.
func (b *Book) Entries() []Contact {
	out := make([]Contact, 0, b.entries.Len())
	for name, phone := range b.entries.All() {
		out = append(out, Contact{Name: name, Phone: phone})
	}
	return out
}

// DebugDump renders one "name->phone" line per contact in slot order.
func (b *Book) DebugDump() string {
	var sb strings.Builder
	for name, phone := range b.entries.All() {
		sb.WriteString(name)
		sb.WriteString(constants.DumpSeparator)
		sb.WriteString(phone)
		sb.WriteByte('\n')
	}
	return sb.String()
}
