package base

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"github.com/gomodule/redigo/redis"
	"github.com/lni/dragonboat/v4/logger"
	"net"
	"time"
)

var Logger = logger.GetLogger(common.LoggerTransport)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the endpoint. A zero timeout blocks.
	Connect(endpoint string, timeout time.Duration) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ServerConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientDialer dials the remote store through a connector
type clientDialer struct {
	connector IClientConnector
}

// clientConn wraps a redigo connection
type clientConn struct {
	conn     redis.Conn
	endpoint string
}

// -----------------------------------------------------------
// Dialer Factory Method (used for tcp and unix)
// -----------------------------------------------------------

// NewBaseClientDialer creates a new dialer with the specified connector
func NewBaseClientDialer(connector IClientConnector) transport.IDialer {
	return &clientDialer{connector: connector}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IDialer)
// --------------------------------------------------------------------------

func (d *clientDialer) Dial(config common.ServerConfig) (transport.IConn, error) {
	endpoint := config.Endpoint()
	timeout := time.Duration(config.TimeoutSecond) * time.Second

	// The connector creates the socket, redigo speaks the protocol on top of it
	netDial := func(_, _ string) (net.Conn, error) {
		conn, err := d.connector.Connect(endpoint, timeout)
		if err != nil {
			return nil, err
		}
		if err := d.connector.UpgradeConnection(conn, config); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to upgrade connection to %s: %v", endpoint, err)
		}
		return conn, nil
	}

	options := []redis.DialOption{redis.DialNetDial(netDial)}
	if timeout > 0 {
		options = append(options,
			redis.DialReadTimeout(timeout),
			redis.DialWriteTimeout(timeout),
		)
	}

	conn, err := redis.Dial(d.connector.GetName(), endpoint, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", common.ErrConnect, endpoint, d.connector.GetName(), err)
	}

	Logger.Debugf("Connected to %s using %s transport", endpoint, d.connector.GetName())
	return &clientConn{conn: conn, endpoint: endpoint}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConn)
// --------------------------------------------------------------------------

func (c *clientConn) Do(cmd string, args ...interface{}) (transport.Reply, error) {
	reply, err := c.conn.Do(cmd, args...)

	// An error reply is not a transport failure
	var replyErr redis.Error
	if errors.As(err, &replyErr) {
		return transport.Reply{Type: transport.ReplyError, Str: string(replyErr)}, nil
	}
	if err != nil {
		return transport.Reply{}, fmt.Errorf("%w: %s %s: %v", common.ErrTransport, cmd, c.endpoint, err)
	}

	return convertReply(reply)
}

func (c *clientConn) Err() error {
	return c.conn.Err()
}

func (c *clientConn) Close() error {
	return c.conn.Close()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// convertReply converts a reply as returned by redigo into a transport.Reply
func convertReply(reply interface{}) (transport.Reply, error) {
	switch v := reply.(type) {
	case nil:
		return transport.Reply{Type: transport.ReplyNil}, nil
	case string:
		return transport.Reply{Type: transport.ReplyStatus, Str: v}, nil
	case int64:
		return transport.Reply{Type: transport.ReplyInteger, Integer: v}, nil
	case []byte:
		return transport.Reply{Type: transport.ReplyString, Str: string(v)}, nil
	case redis.Error:
		return transport.Reply{Type: transport.ReplyError, Str: string(v)}, nil
	case []interface{}:
		elements := make([]transport.Reply, 0, len(v))
		for _, e := range v {
			r, err := convertReply(e)
			if err != nil {
				return transport.Reply{}, err
			}
			elements = append(elements, r)
		}
		return transport.Reply{Type: transport.ReplyArray, Elements: elements}, nil
	default:
		return transport.Reply{}, fmt.Errorf("unexpected reply type %T", reply)
	}
}
