// Package cli provides the interactive wallet command-line client.
//
// It wires configuration, the local session store, the API services and a
// REPL. A session saved by a previous run is restored on start, and a
// background watcher reports whether the server is reachable.
//
// Commands: register, login, logout, whoami, profile, balance, find,
// transfer, help, exit.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
