// Package client contains the client-side building blocks of the users CLI.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) for the users service:
//     Login/Verify, Ping and the user lifecycle operations.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     attaches the access token and a request id to every call, and maps
//     gRPC status codes to sentinel errors.
//  3. Session database bootstrap (InitDatabase, RunMigrations) for the CLI,
//     backed by SQLite with embedded goose migrations.
//
// # Error Handling
//
// Status codes are exposed as sentinel errors that callers match with
// errors.Is: ErrUnauthorized, ErrNotFound, ErrConflict, ErrInvalidArgument
// and ErrUnavailable. The server's message is kept in the error text.
package client
