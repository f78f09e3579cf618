// ════════════════════════════════════════════════════════════════════════════════════════════════
// Phone Book Demo - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Open-Addressing Hash Table
// Component: Usage Example
//
// Description:
//   Drives the table through the phone book scenario, then optionally loads extra contacts
//   from a SQLite database and prints the result as a debug dump and as JSON.
//
// Usage:
//   openhash [path/to/phonebook.db]
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"openhash/constants"
	"openhash/debug"
	"openhash/phonebook"
	"openhash/table"
	"openhash/utils"
)

func main() {
	debug.DropMessage("INIT", "building phone book, "+utils.Itoa(constants.DefaultCapacity)+" slots")
	book := phonebook.New(table.WithGrowthTrace())

	runScenario(book)

	dbPath := constants.DefaultDBPath
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}
	if err := loadDatabase(book, dbPath); err != nil {
		debug.DropError("LOAD", err)
		os.Exit(1)
	}

	debug.DropMessage("DUMP", utils.Itoa(book.Len())+" contacts")
	utils.PrintInfo(book.DebugDump())

	data, err := book.DumpJSON()
	if err != nil {
		debug.DropError("JSON", err)
		os.Exit(1)
	}
	utils.PrintInfo(utils.B2s(data) + "\n")
}

// runScenario inserts, removes and looks up the sample contacts.
func runScenario(book *phonebook.Book) {
	book.Add(phonebook.Contact{Name: "Shubh", Phone: "8850873712"})
	book.Add(phonebook.Contact{Name: "Sbubh", Phone: "8850873712"})
	book.Forget("Sbubh")
	book.Add(phonebook.Contact{Name: "Hershey", Phone: "8369254766"})
	book.Add(phonebook.Contact{Name: "Yash", Phone: "8458467872"})

	for _, name := range []string{"Shubh", "Sbubh"} {
		if phone, ok := book.Lookup(name); ok {
			debug.DropMessage("LOOKUP", name+" -> "+phone)
		} else {
			debug.DropMessage("LOOKUP", name+" -> none")
		}
	}
}

// loadDatabase adds every contact stored at path. A missing file is not an
// error: the demo runs on the built-in contacts alone.
func loadDatabase(book *phonebook.Book, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		debug.DropMessage("LOAD", path+" not found, skipping")
		return nil
	}

	contacts, err := phonebook.LoadSQLite(context.Background(), path)
	if err != nil {
		return err
	}
	added := book.AddAll(contacts)
	debug.DropMessage("LOADED", utils.Itoa(len(contacts))+" rows, "+utils.Itoa(added)+" new contacts")
	return nil
}
