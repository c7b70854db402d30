package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"github.com/looplab/fsm"
	"sync"
)

// ConnState is the state of the shared connection
type ConnState string

const (
	// StateAbsent means no connection exists, the next Acquire dials
	StateAbsent ConnState = "absent"
	// StateLive means a connection exists and is handed out without a health check
	StateLive ConnState = "live"
	// StateFailed means the last dial failed or the connection broke, the next Acquire dials again
	StateFailed ConnState = "failed"
)

// state machine events
const (
	eventConnected = "connected"
	eventFailed    = "failed"
	eventBroken    = "broken"
	eventReset     = "reset"
)

// ConnectionManager owns the single connection to the remote store that all callers
// of a process share. Every read, creation and replacement of the connection and of
// the configuration happens while holding mu.
type ConnectionManager struct {
	mu     sync.Mutex
	config common.ServerConfig
	dialer transport.IDialer
	conn   transport.IConn
	state  *fsm.FSM
}

// NewConnectionManager creates a manager for config. No connection is made until
// the first Acquire.
func NewConnectionManager(config common.ServerConfig, dialer transport.IDialer) *ConnectionManager {
	m := &ConnectionManager{
		config: config,
		dialer: dialer,
	}

	m.state = fsm.NewFSM(
		string(StateAbsent),
		fsm.Events{
			{Name: eventConnected, Src: []string{string(StateAbsent), string(StateFailed)}, Dst: string(StateLive)},
			{Name: eventFailed, Src: []string{string(StateAbsent)}, Dst: string(StateFailed)},
			{Name: eventBroken, Src: []string{string(StateLive)}, Dst: string(StateFailed)},
			{Name: eventReset, Src: []string{string(StateLive), string(StateFailed)}, Dst: string(StateAbsent)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				Logger.Debugf("Connection state %s -> %s (%s)", e.Src, e.Dst, e.Event)
			},
		},
	)

	return m
}

// --------------------------------------------------------------------------
// Public Methods
// --------------------------------------------------------------------------

// Acquire returns the shared connection, dialing it first if there is none.
// A failed dial (or failed authentication) is returned as an error wrapping
// common.ErrConnect and is not cached, the next call dials again.
func (m *ConnectionManager) Acquire() (transport.IConn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acquireLocked()
}

// Reset closes the current connection (if any) and installs config.
// It does not reconnect, the next Acquire does that.
func (m *ConnectionManager) Reset(config common.ServerConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.releaseLocked()
	m.config = config
	common.IncReset()

	Logger.Infof("Remote store set to %s (%s, auth=%t)", config.Endpoint(), config.Type, config.Auth)
}

// Do sends a single command over the shared connection and returns the reply.
// The connection is held exclusively for the whole round trip. On a transport
// failure the connection is dropped, so the following call dials a new one.
func (m *ConnectionManager) Do(cmd string, args ...interface{}) (transport.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, err := m.acquireLocked()
	if err != nil {
		return transport.Reply{}, err
	}

	reply, err := conn.Do(cmd, args...)
	if err != nil {
		if !errors.Is(err, common.ErrTransport) {
			err = fmt.Errorf("%w: %v", common.ErrTransport, err)
		}
		m.dropLocked(err)
		return transport.Reply{}, err
	}

	// the reply arrived, but the connection may still be unusable afterwards
	if connErr := conn.Err(); connErr != nil {
		m.dropLocked(connErr)
	}

	return reply, nil
}

// Config returns the configuration currently installed
func (m *ConnectionManager) Config() common.ServerConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.config
}

// State returns the state of the shared connection
func (m *ConnectionManager) State() ConnState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return ConnState(m.state.Current())
}

// Close releases the connection. Used at process teardown.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.releaseLocked()
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods (mu must be held)
// --------------------------------------------------------------------------

func (m *ConnectionManager) acquireLocked() (transport.IConn, error) {
	if m.conn != nil {
		return m.conn, nil
	}

	conn, err := m.connect(m.config)
	common.IncDial(err != nil)
	if err != nil {
		m.transition(eventFailed)
		Logger.Warningf("Failed to connect to %s: %v", m.config.Endpoint(), err)
		return nil, err
	}

	m.conn = conn
	m.transition(eventConnected)
	Logger.Infof("Connected to %s", m.config.Endpoint())

	return conn, nil
}

// connect dials the store and authenticates if the configuration asks for it
func (m *ConnectionManager) connect(config common.ServerConfig) (transport.IConn, error) {
	conn, err := m.dialer.Dial(config)
	if err != nil {
		if !errors.Is(err, common.ErrConnect) {
			err = fmt.Errorf("%w: %s: %v", common.ErrConnect, config.Endpoint(), err)
		}
		return nil, err
	}

	if !config.Auth {
		return conn, nil
	}

	reply, err := conn.Do("AUTH", config.Password)
	if err == nil && reply.IsError() {
		err = errors.New(reply.Str)
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %w: %v", common.ErrConnect, common.ErrAuth, err)
	}

	return conn, nil
}

// releaseLocked closes the connection if one is recorded and forgets it
func (m *ConnectionManager) releaseLocked() {
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			Logger.Debugf("Failed to close connection to %s: %v", m.config.Endpoint(), err)
		}
		m.conn = nil
	}
	m.transition(eventReset)
}

// dropLocked closes a broken connection and marks the state as failed
func (m *ConnectionManager) dropLocked(cause error) {
	Logger.Warningf("Connection to %s broke: %v", m.config.Endpoint(), cause)
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
	}
	m.transition(eventBroken)
}

// transition fires event if the current state allows it
func (m *ConnectionManager) transition(event string) {
	if !m.state.Can(event) {
		return
	}
	if err := m.state.Event(context.Background(), event); err != nil {
		Logger.Errorf("Connection state transition %s failed: %v", event, err)
	}
}
