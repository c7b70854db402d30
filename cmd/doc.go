// Package cmd implements the command-line interface of redis-udf. It stands in for
// the database host: every kv command calls a registered function with the same
// init, exec and deinit sequence the host uses.
//
// The package is organized into several subpackages:
//
//   - kv: Commands calling the functions (set, sadd, srem, servers-set, batch, perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// All flags can also be set as environment variables with the RUDF_ prefix
// (e.g. RUDF_HOST=10.0.0.1), or in a .env / .env.local file.
//
// See redis-udf -help for a list of all commands.
package cmd
