// Package transport defines the interfaces between the connection manager and the
// remote key-value store. The store is treated as a request/reply peer: a command
// line goes out, a typed reply comes back.
//
// The package focuses on:
//   - Defining clear interfaces for dialing the store and issuing commands
//   - A protocol independent representation of replies
//   - Enabling multiple connection kinds (TCP, Unix sockets)
//
// Key Components:
//
//   - IDialer: Creates a connection for a common.ServerConfig.
//
//   - IConn: A single connection. Do sends one command and returns its Reply,
//     Err reports whether the connection broke.
//
//   - Reply: Typed reply (status, error, integer, string, array, nil).
package transport
