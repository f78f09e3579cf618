// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path logging helpers (no fmt)
//
// Purpose:
//   - Logs table growth, demo phases and load failures without fmt.
//   - Every line is "PREFIX: message\n" on stderr.
//
// Notes:
//   - Builds the line with a single concatenation and one raw write.
//   - Never called from Insert/Get/Remove probe loops.
//
// ⚠️ Never invoke in hot loops — use only in diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "openhash/utils"

// DropError logs an error under prefix. A nil error logs the bare prefix,
// which callers use as a tagged marker line.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs a diagnostic message under prefix.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
