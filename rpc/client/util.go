package client

import (
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"github.com/ValentinKolb/redis-udf/rpc/transport/tcp"
	"github.com/ValentinKolb/redis-udf/rpc/transport/unix"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger(common.LoggerClient)
)

// connTypeDialer picks the dialer matching the connection kind of the configuration
type connTypeDialer map[common.ConnType]transport.IDialer

// NewDialer returns a dialer for both connection kinds (tcp and unix)
func NewDialer() transport.IDialer {
	return connTypeDialer{
		common.ConnTCP:  tcp.NewTCPClientDialer(),
		common.ConnUnix: unix.NewUnixClientDialer(),
	}
}

func (d connTypeDialer) Dial(config common.ServerConfig) (transport.IConn, error) {
	dialer, ok := d[config.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported connection type %q", common.ErrConnect, config.Type)
	}
	return dialer.Dial(config)
}
