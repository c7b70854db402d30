// Package udf models the calling convention a relational database host uses for
// loadable user defined functions. It is the boundary between the host and the
// functions this module provides.
//
// The package focuses on:
//   - Typed access to the arguments the host hands over (string, integer, real)
//   - The init, exec and deinit callbacks every function implements
//   - A registry that stands in for the host's function table
//
// Key Components:
//
//   - Args: Argument types and values of one call. A nil value is a SQL NULL.
//
//   - Result: Integer result plus the null and error flags of one call.
//
//   - InitError: Failure of an init callback. Carries the message shown to the caller
//     and the status code handed to the host.
//
//   - Function: Interface with the Init, Exec and Deinit callbacks.
//
//   - Registry: Concurrent name to Function map with a Call method that runs
//     Init, Exec and Deinit in order.
//
// Usage Example:
//
//	reg := udf.NewRegistry()
//	_ = reg.Register(fn)
//	res, err := reg.Call("redis_set", udf.StringArgs("key", "value"))
package udf
