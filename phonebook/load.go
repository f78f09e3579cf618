package phonebook

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/multierr"

	"openhash/constants"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SQLITE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// LoadSQLite reads every (name, phone) row of the contacts table at path,
// ordered by name. The database is opened read-only and is never created.
func LoadSQLite(ctx context.Context, path string) (cs []Contact, err error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	// Size the result exactly before loading rows.
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+constants.ContactsTable).Scan(&count); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT name, phone FROM "+constants.ContactsTable+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer func() { err = multierr.Append(err, rows.Close()) }()

	cs = make([]Contact, 0, count)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return cs, nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// JSON
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// LoadJSON decodes a JSON array of {"name","phone"} objects.
func LoadJSON(r io.Reader) ([]Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}
	var cs []Contact
	if err := sonnet.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return cs, nil
}

// DumpJSON encodes every contact of b, in slot order, as a JSON array.
func (b *Book) DumpJSON() ([]byte, error) {
	data, err := sonnet.Marshal(b.Entries())
	if err != nil {
		return nil, fmt.Errorf("encode contacts: %w", err)
	}
	return data, nil
}
