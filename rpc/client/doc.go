// Package client implements the connection handling and command execution against the
// remote key-value store. It holds the single connection a process shares and turns
// host function calls into store commands.
//
// The package focuses on:
//   - One lazily created connection per process, guarded by a mutex
//   - Reconfiguration that tears down the connection and installs a new configuration
//   - Argument validation and the mapping of replies to the host's result convention
//
// Key Components:
//
//   - ConnectionManager: Owns the shared connection. Acquire dials (and authenticates)
//     when no connection exists, Reset closes it and installs a new configuration,
//     Do runs one command while holding the connection exclusively. The connection state
//     (absent, live, failed) is tracked in a state machine; failed dials are never
//     cached, every later call dials again.
//
//   - Executor: Validates arguments against the fixed shape of an operation and runs
//     SET, SADD, SREM and the server reconfiguration. Optionally appends every
//     command to a log file.
//
//   - Verb: Closed set of forwarded commands (SET, SADD, SREM).
//
// Usage Example:
//
//	manager := client.NewConnectionManager(common.DefaultServerConfig(), client.NewDialer())
//	defer manager.Close()
//
//	exec := client.NewExecutor(manager)
//	args := udf.StringArgs("key", "value")
//	if err := exec.ValidateCommand(client.VerbSet, args); err != nil {
//	  // surface the message to the caller
//	}
//	res := exec.ExecuteCommand(client.VerbSet, args)
//
// Thread Safety:
//
//	All methods are safe for concurrent use. Commands are serialized on the shared
//	connection, so at most one round trip is in flight at a time.
package client
