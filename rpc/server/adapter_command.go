package server

import (
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/client"
)

// NewCommandFunction exposes a verb as host function name, e.g. SET as redis_set
func NewCommandFunction(name string, verb client.Verb, exec *client.Executor) udf.Function {
	return &commandFunction{
		name: name,
		verb: verb,
		exec: exec,
	}
}

type commandFunction struct {
	name string
	verb client.Verb
	exec *client.Executor
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the udf package in interface.go)
// --------------------------------------------------------------------------

func (f *commandFunction) Name() string {
	return f.name
}

func (f *commandFunction) Init(args udf.Args) error {
	return f.exec.ValidateCommand(f.verb, args)
}

func (f *commandFunction) Exec(args udf.Args) udf.Result {
	return f.exec.ExecuteCommand(f.verb, args)
}

func (f *commandFunction) Deinit() {}
