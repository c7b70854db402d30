// Package server exposes the operations of the client package as host functions.
// It is the side of this module the database host talks to.
//
// The package focuses on:
//   - Adapter pattern to decouple the host calling convention from command execution
//   - Creating the process wide connection manager and executor exactly once
//   - Registering all functions under the names the host knows them by
//
// Key Components:
//
//   - NewCommandFunction: Adapter turning a client.Verb into a udf.Function
//     (redis_set, redis_sadd, redis_srem). Init validates and checks the connection,
//     Exec sends the command.
//
//   - NewConfigureFunction: Adapter for redis_servers_set. Init reconfigures the shared
//     connection and verifies the store is reachable, Exec always returns 0.
//
//   - NewFunctionServer: Creates the manager, the executor and a udf.Registry with all
//     four functions.
//
// Usage Example:
//
//	s, _ := server.NewFunctionServer(common.DefaultServerConfig(), client.NewDialer())
//	defer s.Close()
//
//	// select redis_servers_set('10.0.0.1', 6379, 'secret');
//	args := udf.Args{
//	  Types:  []udf.ArgType{udf.StringArg, udf.IntArg, udf.StringArg},
//	  Values: []interface{}{"10.0.0.1", int64(6379), "secret"},
//	}
//	_, err := s.Registry().Call(server.FnServersSet, args)
//
//	// select redis_sadd('users', '42');
//	res, err := s.Registry().Call(server.FnSAdd, udf.StringArgs("users", "42"))
package server
