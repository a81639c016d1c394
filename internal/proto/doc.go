// Package proto holds the gRPC contract of the auth service. The Go stubs
// are generated from auth.proto; rerun go generate after editing it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative auth.proto
