// Package tcp implements the TCP socket connector for the dialers of this module.
// It applies TCP_NODELAY and keep-alive settings from the common.ServerConfig to every
// new connection, see the base package for the protocol handling.
package tcp
