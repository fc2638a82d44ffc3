// Package proto holds the campusgate.v1.PortalService contract generated
// from portal.proto.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative portal.proto
package proto
