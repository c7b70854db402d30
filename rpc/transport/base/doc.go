// Package base provides the foundation of the dialers in this module, implementing
// the protocol handling independent of the socket kind (TCP, Unix sockets). It is
// extended with connectors that create and tune the socket.
//
// The package focuses on:
//   - Dialing through a connector and speaking the store protocol with redigo
//   - Separating error replies of the store from transport failures
//   - Converting redigo replies into transport.Reply values
//
// Key Components:
//
//   - IClientConnector: Interface for the socket specific operations (connect, upgrade).
//
//   - clientDialer: Implements transport.IDialer on top of a connector. Read and write
//     deadlines are derived from ServerConfig.TimeoutSecond.
//
//   - clientConn: Implements transport.IConn around a redigo connection.
//
// Thread Safety:
//
//	A clientConn must not be used by two goroutines at the same time. The connection
//	manager of the client package serializes all access.
package base
