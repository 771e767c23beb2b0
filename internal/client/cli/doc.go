// Package cli provides the interactive userdb command-line client.
//
// It wires configuration and the HTTP API client into a small REPL:
// register, login, list and get accounts, ping the server. Passwords are read
// from the terminal without echo and kept as []byte. The prompt buffer and the
// encoded request body are zeroed after the call; copies made inside net/http
// are out of reach.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command set.
package cli
