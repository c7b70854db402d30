package client

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"sync"
	"time"
)

// Init status codes (udf.InitError.Code)
const (
	// CodeArity is returned for a wrong number of arguments
	CodeArity = -1
	// CodeType is returned for an argument of the wrong type
	CodeType = -2
	// CodeValue is returned for an argument that is NULL, not constant or out of range
	CodeValue = -3
	// CodeConnect is returned when the remote store cannot be reached
	CodeConnect = 2
)

// Exec result values (udf.Result.Value)
const (
	ExecOK              int64 = 0
	ExecConnectFailed   int64 = -1
	ExecLogFailed       int64 = -2
	ExecTransportFailed int64 = -3
	ExecReplyError      int64 = -4
	ExecNullArgument    int64 = -5
)

const connectFailedMessage = "Failed to connect to Redis"

// configureShape is the argument shape of Configure: 'host' (string) port (integer) ['password' (string)]
var configureShape = argShape{
	required: []udf.ArgType{udf.StringArg, udf.IntArg},
	optional: []udf.ArgType{udf.StringArg},
	usage:    "'host' (string) port (integer) ['password' (string)]",
}

// argShape is the fixed argument count and type list of an operation
type argShape struct {
	required []udf.ArgType
	optional []udf.ArgType
	usage    string
}

// check validates the count and the types of args against the shape
func (s argShape) check(name string, args udf.Args) error {
	count := args.Count()
	if count < len(s.required) || count > len(s.required)+len(s.optional) {
		return &udf.InitError{
			Code:    CodeArity,
			Message: fmt.Sprintf("Wrong number of arguments to %s. Usage: %s", name, s.usage),
		}
	}

	for i, t := range args.Types {
		var want udf.ArgType
		if i < len(s.required) {
			want = s.required[i]
		} else {
			want = s.optional[i-len(s.required)]
		}
		if t != want {
			return &udf.InitError{
				Code:    CodeType,
				Message: fmt.Sprintf("Wrong argument %d to %s, must be %s. Usage: %s", i+1, name, want, s.usage),
			}
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Executor
// --------------------------------------------------------------------------

// Executor validates the arguments of the host functions, runs the commands through
// the ConnectionManager and maps the outcome to the host's result convention.
type Executor struct {
	manager *ConnectionManager
	logMu   sync.Mutex
}

// NewExecutor creates an executor working on manager
func NewExecutor(manager *ConnectionManager) *Executor {
	return &Executor{manager: manager}
}

// Manager returns the connection manager of the executor
func (e *Executor) Manager() *ConnectionManager {
	return e.manager
}

// ValidateCommand checks args against the shape of v and makes sure the remote
// store is reachable. The returned error is an *udf.InitError.
func (e *Executor) ValidateCommand(v Verb, args udf.Args) error {
	if !v.Valid() {
		return &udf.InitError{Code: CodeArity, Message: fmt.Sprintf("Unsupported command %s", v)}
	}
	if err := v.shape().check(v.String(), args); err != nil {
		return err
	}

	// fail fast if the store is unreachable
	if _, err := e.manager.Acquire(); err != nil {
		return &udf.InitError{Code: CodeConnect, Message: connectFailedMessage, Err: err}
	}
	return nil
}

// ExecuteCommand sends "<VERB> <key> <value>" to the remote store.
// Failures set IsError, except for a failing command log which is only reported
// by the ExecLogFailed value.
func (e *Executor) ExecuteCommand(v Verb, args udf.Args) udf.Result {
	res := udf.Result{}

	key, okKey := args.String(0)
	value, okValue := args.String(1)
	if !okKey || !okValue {
		common.IncCommandFailure(common.FailureNull)
		Logger.Debugf("%s skipped: %v", v, common.ErrNullArgument)
		res.IsError = true
		res.Value = ExecNullArgument
		return res
	}

	if _, err := e.manager.Acquire(); err != nil {
		common.IncCommandFailure(common.FailureConnect)
		res.IsError = true
		res.Value = ExecConnectFailed
		return res
	}

	line := CommandLine(v, key, value)

	config := e.manager.Config()
	if config.Debug {
		if err := e.appendCommandLog(config.LogFile, line); err != nil {
			common.IncCommandFailure(common.FailureLog)
			Logger.Errorf("%v", err)
			res.Value = ExecLogFailed
			return res
		}
	}

	start := time.Now()
	common.IncCommand(v.String())
	reply, err := e.manager.Do(v.String(), key, value)
	common.ObserveCommand(start)

	switch {
	case errors.Is(err, common.ErrConnect):
		common.IncCommandFailure(common.FailureConnect)
		res.IsError = true
		res.Value = ExecConnectFailed
	case err != nil:
		common.IncCommandFailure(common.FailureTransport)
		Logger.Warningf("%s failed: %v", line, err)
		res.IsError = true
		res.Value = ExecTransportFailed
	case reply.IsError():
		common.IncCommandFailure(common.FailureReply)
		Logger.Warningf("%s failed: %v: %s", line, common.ErrReply, reply.Str)
		res.IsError = true
		res.Value = ExecReplyError
	default:
		Logger.Debugf("%s -> %s", line, reply.Type)
		res.Value = ExecOK
	}
	return res
}

// ValidateConfigure reconfigures the shared connection to host and port (arguments 0 and 1)
// and enables authentication when a password (argument 2) is given. The store must be
// reachable with the new configuration. The returned error is an *udf.InitError.
func (e *Executor) ValidateConfigure(name string, args udf.Args) error {
	if err := configureShape.check(name, args); err != nil {
		return err
	}

	host, okHost := args.String(0)
	port, okPort := args.Int(1)
	if !okHost || !okPort || host == "" {
		return &udf.InitError{
			Code:    CodeValue,
			Message: fmt.Sprintf("Arguments to %s must be constant and not NULL. Usage: %s", name, configureShape.usage),
		}
	}
	if port < 1 || port > 65535 {
		return &udf.InitError{
			Code:    CodeValue,
			Message: fmt.Sprintf("Port %d out of range for %s", port, name),
		}
	}

	// derive the new configuration from the current one, so the log settings are kept
	config := e.manager.Config()
	config.Type = common.ConnTCP
	config.Host = host
	config.Port = int(port)
	config.Auth = false
	config.Password = ""
	if args.Count() == 3 {
		password, ok := args.String(2)
		if !ok {
			return &udf.InitError{
				Code:    CodeValue,
				Message: fmt.Sprintf("Password to %s must be constant and not NULL", name),
			}
		}
		config.Auth = true
		config.Password = password
	}

	e.manager.Reset(config)
	if _, err := e.manager.Acquire(); err != nil {
		return &udf.InitError{Code: CodeConnect, Message: connectFailedMessage, Err: err}
	}
	return nil
}

// ExecuteConfigure does nothing, the work happens in ValidateConfigure
func (e *Executor) ExecuteConfigure(_ udf.Args) udf.Result {
	return udf.Result{Value: ExecOK}
}
