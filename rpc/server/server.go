package server

import (
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/client"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger(common.LoggerServer)

// NewFunctionServer creates the process wide state behind the host functions:
// one connection manager, one executor and a registry holding redis_set, redis_sadd,
// redis_srem and redis_servers_set.
//
// Usage:
//
//	s, err := server.NewFunctionServer(
//		common.DefaultServerConfig(),
//		client.NewDialer(),
//	)
//	if err != nil {
//		panic(err)
//	}
//	defer s.Close()
//
//	res, err := s.Registry().Call(server.FnSet, udf.StringArgs("key", "value"))
func NewFunctionServer(config common.ServerConfig, dialer transport.IDialer) (*FunctionServer, error) {
	manager := client.NewConnectionManager(config, dialer)
	exec := client.NewExecutor(manager)

	s := &FunctionServer{
		manager:  manager,
		exec:     exec,
		registry: udf.NewRegistry(),
	}

	functions := []udf.Function{
		NewCommandFunction(FnSet, client.VerbSet, exec),
		NewCommandFunction(FnSAdd, client.VerbSAdd, exec),
		NewCommandFunction(FnSRem, client.VerbSRem, exec),
		NewConfigureFunction(FnServersSet, exec),
	}
	for _, fn := range functions {
		if err := s.registry.Register(fn); err != nil {
			return nil, err
		}
		Logger.Debugf("Registered function %s", fn.Name())
	}

	Logger.Infof("Created function server")
	Logger.Infof(config.String())

	return s, nil
}

// FunctionServer bundles the shared state of all host functions
type FunctionServer struct {
	manager  *client.ConnectionManager
	exec     *client.Executor
	registry *udf.Registry
}

// Registry returns the registry with all host functions
func (s *FunctionServer) Registry() *udf.Registry {
	return s.registry
}

// Manager returns the connection manager shared by all functions
func (s *FunctionServer) Manager() *client.ConnectionManager {
	return s.manager
}

// Close releases the shared connection
func (s *FunctionServer) Close() error {
	Logger.Infof("Closing function server")
	return s.manager.Close()
}
