package server

import (
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/client"
)

// NewConfigureFunction exposes the reconfiguration of the shared connection as host
// function name. The work happens in Init, Exec always returns 0.
func NewConfigureFunction(name string, exec *client.Executor) udf.Function {
	return &configureFunction{
		name: name,
		exec: exec,
	}
}

type configureFunction struct {
	name string
	exec *client.Executor
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the udf package in interface.go)
// --------------------------------------------------------------------------

func (f *configureFunction) Name() string {
	return f.name
}

func (f *configureFunction) Init(args udf.Args) error {
	return f.exec.ValidateConfigure(f.name, args)
}

func (f *configureFunction) Exec(args udf.Args) udf.Result {
	return f.exec.ExecuteConfigure(args)
}

func (f *configureFunction) Deinit() {}
