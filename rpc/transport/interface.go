package transport

import (
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
)

// --------------------------------------------------------------------------
// Replies
// --------------------------------------------------------------------------

// ReplyType is the type of a reply of the remote store
type ReplyType int

const (
	ReplyNil ReplyType = iota
	ReplyStatus
	ReplyError
	ReplyInteger
	ReplyString
	ReplyArray
)

func (t ReplyType) String() string {
	switch t {
	case ReplyNil:
		return "nil"
	case ReplyStatus:
		return "status"
	case ReplyError:
		return "error"
	case ReplyInteger:
		return "integer"
	case ReplyString:
		return "string"
	case ReplyArray:
		return "array"
	default:
		return fmt.Sprintf("ReplyType(%d)", int(t))
	}
}

// Reply is a typed reply of the remote store.
// Str holds the status text, the bulk string or the error text depending on Type.
type Reply struct {
	Type     ReplyType
	Integer  int64
	Str      string
	Elements []Reply
}

// IsError returns true if the remote store answered with an error reply
func (r Reply) IsError() bool {
	return r.Type == ReplyError
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IConn is a single connection to the remote store.
// Implementations do not need to be safe for concurrent use, the connection
// manager never shares a connection between two running commands.
type IConn interface {
	// Do sends a command and waits for its reply.
	// An error reply of the store is returned as Reply with Type ReplyError and a nil error,
	// err is only set for transport failures.
	Do(cmd string, args ...interface{}) (Reply, error)
	// Err returns a non-nil value once the connection is unusable
	Err() error
	// Close closes the connection
	Close() error
}

// IDialer creates connections to the remote store
type IDialer interface {
	// Dial connects to the endpoint described by config.
	// Authentication is not part of dialing, it is done by the caller.
	Dial(config common.ServerConfig) (IConn, error)
}
