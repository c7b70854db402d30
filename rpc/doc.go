// Package rpc contains everything between the host functions and the remote
// Redis compatible store.
//
// The package is organized into several subpackages:
//
//   - common: Configuration of the remote store, error values, logging and metrics
//     shared by all other packages.
//
//   - transport: The connection abstraction (IConn, IDialer) with a redigo based
//     implementation and TCP and Unix socket connectors.
//
//   - client: The ConnectionManager owning the one shared connection and the
//     Executor that validates arguments, runs commands and maps the outcome.
//
//   - server: The host function adapters (redis_set, redis_sadd, redis_srem,
//     redis_servers_set) and the FunctionServer registering them.
package rpc
