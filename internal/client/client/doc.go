// Package client wraps the PortalService gRPC API for the CLI. It tags each
// call with a request id, turns gRPC statuses into the package's sentinel
// errors, and exposes the server's health check as Ping.
package client
