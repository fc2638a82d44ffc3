// Package cli implements the interactive campusgate command-line client:
// a small REPL that drives the signup (request code, verify code) and login
// flows against the portal's gRPC API.
package cli
