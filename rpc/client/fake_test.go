package client

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"strings"
	"sync"
	"time"
)

// fakeConn records every command sent over it
type fakeConn struct {
	mu      sync.Mutex
	sent    []string
	replies map[string]transport.Reply
	doErr   error
	connErr error
	closed  bool
}

func (c *fakeConn) Do(cmd string, args ...interface{}) (transport.Reply, error) {
	parts := []string{cmd}
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sent = append(c.sent, strings.Join(parts, " "))
	if c.doErr != nil {
		return transport.Reply{}, c.doErr
	}
	if r, ok := c.replies[cmd]; ok {
		return r, nil
	}
	return transport.Reply{Type: transport.ReplyStatus, Str: "OK"}, nil
}

func (c *fakeConn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connErr
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) Sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.sent...)
}

func (c *fakeConn) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// fakeDialer counts dials and hands out fakeConns
type fakeDialer struct {
	mu      sync.Mutex
	fail    bool
	delay   time.Duration
	replies map[string]transport.Reply
	configs []common.ServerConfig
	conns   []*fakeConn
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{replies: map[string]transport.Reply{}}
}

func (d *fakeDialer) Dial(config common.ServerConfig) (transport.IConn, error) {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.configs = append(d.configs, config)
	if d.fail {
		return nil, errors.New("connection refused")
	}

	replies := make(map[string]transport.Reply, len(d.replies))
	for k, v := range d.replies {
		replies[k] = v
	}
	conn := &fakeConn{replies: replies}
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDialer) SetFail(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = fail
}

// Dials returns the number of dial attempts
func (d *fakeDialer) Dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.configs)
}

// Conns returns all connections created so far
func (d *fakeDialer) Conns() []*fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeConn{}, d.conns...)
}

func (d *fakeDialer) LastConfig() common.ServerConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.configs[len(d.configs)-1]
}

// Sent returns the commands sent over all connections
func (d *fakeDialer) Sent() []string {
	var sent []string
	for _, c := range d.Conns() {
		sent = append(sent, c.Sent()...)
	}
	return sent
}
