package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Remote store configuration struct
// --------------------------------------------------------------------------

// ConnType selects how the remote store is reached
type ConnType string

const (
	ConnTCP  ConnType = "tcp"
	ConnUnix ConnType = "unix"
)

// ParseConnType converts a string to a ConnType
func ParseConnType(s string) (ConnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp":
		return ConnTCP, nil
	case "unix":
		return ConnUnix, nil
	default:
		return "", fmt.Errorf("invalid connection type %s (expected tcp or unix)", s)
	}
}

// Default values of the process wide configuration
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 6379
	DefaultSocketPath = "/tmp/redis.sock"
	DefaultLogFile    = "/tmp/redis_udf.log"
)

// ServerConfig holds the location and credentials of the remote store.
// Only one of (Host, Port) and SocketPath is used, selected by Type.
// A ServerConfig is never changed in place once handed to the connection manager,
// reconfiguration installs a complete new value.
type ServerConfig struct {
	// Type is the connection kind
	Type ConnType

	// network target (Type == ConnTCP)
	Host string
	Port int

	// local socket (Type == ConnUnix)
	SocketPath string

	// authentication
	Password string
	Auth     bool

	// command log
	Debug   bool
	LogFile string

	// TimeoutSecond bounds dial, read and write. 0 blocks until the transport returns.
	TimeoutSecond int

	// TCP socket options
	TCPNoDelay      bool
	TCPKeepAliveSec int
}

// DefaultServerConfig returns the configuration installed at process start
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Type:       ConnTCP,
		Host:       DefaultHost,
		Port:       DefaultPort,
		SocketPath: DefaultSocketPath,
		LogFile:    DefaultLogFile,
		TCPNoDelay: true,
	}
}

// Endpoint returns the address to dial for the configured connection kind
func (c *ServerConfig) Endpoint() string {
	if c.Type == ConnUnix {
		return c.SocketPath
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// String returns a formatted string representation of the configuration.
// The password is never printed.
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Connection
	addSection("Remote Store")
	addField("Connection Type", string(c.Type))
	addField("Endpoint", c.Endpoint())
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	if c.Type == ConnTCP {
		addField("TCP No Delay", strconv.FormatBool(c.TCPNoDelay))
		addField("TCP Keep Alive", fmt.Sprintf("%d sec", c.TCPKeepAliveSec))
	}

	// Authentication
	addSection("Authentication")
	addField("Enabled", strconv.FormatBool(c.Auth))

	// Command log
	addSection("Command Log")
	addField("Debug", strconv.FormatBool(c.Debug))
	addField("Log File", c.LogFile)

	return sb.String()
}
