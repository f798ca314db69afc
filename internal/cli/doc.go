// Package cli provides the interactive passport command-line client.
//
// It wires configuration, local storage, dictation and an interactive REPL
// with three views mirroring the passport's tabs:
//
//   - about     welcome text
//   - input     tag selection, memos, praise stamps
//   - passport  the read-only record shown to supporters, with its share link
//
// Typical flow: resolve the starting record (a share link passed on the
// command line wins over the stored record), then execute user commands.
// Nothing is written to local storage until the user types "save".
//
// The REPL is started by the root command of NewRootCmd, which blocks until
// the user exits. See runREPL and dispatch for the command set.
package cli
