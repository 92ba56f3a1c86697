// Package cli provides the interactive terminal front end of the vault.
//
// It wires configuration, the file store, the vault service, and the
// administrator login into a read–eval–print loop. Typical flow: prompt for
// administrator credentials (bounded attempts), bootstrap the store
// (including the one-time legacy migration), then execute user commands.
//
// Key features:
//   - add / list / edit / delete credentials
//   - listing with sort and filter options and decrypted passwords
//   - styled output (lipgloss); hidden password input (x/term)
//
// The session is started via App.Run(ctx), which blocks until the user
// exits. The vault core never prints; all rendering happens here.
package cli
