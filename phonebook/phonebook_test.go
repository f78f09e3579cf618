package phonebook

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"openhash/hasher"
	"openhash/table"
)

func TestBookScenario(t *testing.T) {
	b := New()
	b.Add(Contact{Name: "Shubh", Phone: "8850873712"})
	b.Add(Contact{Name: "Sbubh", Phone: "8850873712"})
	_, ok := b.Forget("Sbubh")
	require.True(t, ok)
	b.Add(Contact{Name: "Hershey", Phone: "8369254766"})
	b.Add(Contact{Name: "Yash", Phone: "8458467872"})

	phone, ok := b.Lookup("Shubh")
	require.True(t, ok)
	require.Equal(t, "8850873712", phone)

	_, ok = b.Lookup("Sbubh")
	require.False(t, ok)
	require.Equal(t, 3, b.Len())
}

func TestBookAddReplaces(t *testing.T) {
	b := New()
	_, replaced := b.Add(Contact{Name: "Yash", Phone: "1"})
	require.False(t, replaced)

	prev, replaced := b.Add(Contact{Name: "Yash", Phone: "2"})
	require.True(t, replaced)
	require.Equal(t, "1", prev)
	require.Equal(t, 1, b.Len())
}

func TestBookAddAllCountsNewNames(t *testing.T) {
	b := NewWithHasher(hasher.XXH{}, table.WithCapacity(2))
	added := b.AddAll([]Contact{
		{Name: "Shubh", Phone: "1"},
		{Name: "Hershey", Phone: "2"},
		{Name: "Shubh", Phone: "3"},
		{Name: "Yash", Phone: "4"},
	})
	require.Equal(t, 3, added)
	require.Equal(t, 3, b.Len())
	require.Equal(t, 4, b.Table().Cap())

	phone, _ := b.Lookup("Shubh")
	require.Equal(t, "3", phone)
}

func TestBookEntriesAndDebugDump(t *testing.T) {
	b := New()
	b.Add(Contact{Name: "Hershey", Phone: "8369254766"})
	b.Add(Contact{Name: "Yash", Phone: "8458467872"})

	require.ElementsMatch(t, []Contact{
		{Name: "Hershey", Phone: "8369254766"},
		{Name: "Yash", Phone: "8458467872"},
	}, b.Entries())

	dump := b.DebugDump()
	require.Contains(t, dump, "Hershey->8369254766\n")
	require.Contains(t, dump, "Yash->8458467872\n")
	require.Equal(t, 2, strings.Count(dump, "\n"))
}

func TestJSONRoundTrip(t *testing.T) {
	in := `[{"name":"Shubh","phone":"8850873712"},{"name":"Yash","phone":"8458467872"}]`
	cs, err := LoadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []Contact{
		{Name: "Shubh", Phone: "8850873712"},
		{Name: "Yash", Phone: "8458467872"},
	}, cs)

	b := New()
	b.AddAll(cs)
	data, err := b.DumpJSON()
	require.NoError(t, err)

	back, err := LoadJSON(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.ElementsMatch(t, cs, back)
}

func TestLoadJSONRejectsMalformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`[{"name":`))
	require.Error(t, err)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE contacts (name TEXT PRIMARY KEY, phone TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO contacts (name, phone) VALUES
		('Yash', '8458467872'), ('Hershey', '8369254766'), ('Shubh', '8850873712')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cs, err := LoadSQLite(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []Contact{
		{Name: "Hershey", Phone: "8369254766"},
		{Name: "Shubh", Phone: "8850873712"},
		{Name: "Yash", Phone: "8458467872"},
	}, cs)

	b := New()
	require.Equal(t, 3, b.AddAll(cs))
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, err := LoadSQLite(context.Background(), filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
}
