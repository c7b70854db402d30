package common

import "errors"

// Sentinel errors shared by the transport and client packages.
var (
	// ErrConnect is returned when the remote store cannot be dialed
	ErrConnect = errors.New("failed to connect to remote store")
	// ErrAuth is returned when the remote store rejects the AUTH command
	ErrAuth = errors.New("authentication with remote store failed")
	// ErrTransport is returned when sending a command or reading its reply fails
	ErrTransport = errors.New("remote store transport failure")
	// ErrReply is returned when the remote store answers with an error reply
	ErrReply = errors.New("remote store returned an error")
	// ErrLogWrite is returned when the command log cannot be opened or written
	ErrLogWrite = errors.New("failed to write command log")
	// ErrNullArgument is returned when a command argument is SQL NULL at execution time
	ErrNullArgument = errors.New("argument is NULL")
)
