// Package cli provides the interactive habitkeeper command-line client.
//
// It wires configuration, the local key-value store, the account and
// tracker services, and a REPL. Typical flow: restore the session saved in
// the store, then sign up or log in and work from the dashboard.
//
// Key features:
//   - Sign up / Login / Logout (accounts live in the local store)
//   - Profile view and editor
//   - Daily quote from Tim
//   - Wren & Martin chapter counter and habit check-ins
//   - Static task, upcoming and stories panels
//   - Export / Import of the raw key-value layout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
