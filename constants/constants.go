// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Table Tunables & Demo Defaults
//
// Purpose:
//   - Defines the initial slot count and growth factor used by the table.
//   - Names the sample data locations read by the phone book demo.
//
// Notes:
//   - Capacity is not rounded to a power of two; natural indices use modulo.
//   - Growth doubles the slot array, keeping amortized insert cost O(1).
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Table Sizing ───────────────────────────────

const (
	// DefaultCapacity is the slot count of a table built without WithCapacity.
	DefaultCapacity = 69 // Nice

	// GrowthFactor multiplies the slot count each time a full table needs room
	// for a new key.
	GrowthFactor = 2
)

// ───────────────────────────── Phone Book Demo ────────────────────────────

const (
	// DefaultDBPath is the SQLite database the demo binary reads when no path
	// is given on the command line. A missing file is skipped.
	DefaultDBPath = "phonebook.db"

	// ContactsTable holds (name TEXT PRIMARY KEY, phone TEXT) rows.
	ContactsTable = "contacts"

	// DumpSeparator joins key and value in human-readable dumps.
	DumpSeparator = "->"
)
