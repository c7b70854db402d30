package client

import (
	"errors"
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// newTestExecutor creates an executor on a fake dialer with the default configuration
func newTestExecutor(t *testing.T) (*Executor, *fakeDialer) {
	t.Helper()
	dialer := newFakeDialer()
	m := NewConnectionManager(common.DefaultServerConfig(), dialer)
	t.Cleanup(func() { m.Close() })
	return NewExecutor(m), dialer
}

// initCode returns the code of an *udf.InitError
func initCode(t *testing.T, err error) int {
	t.Helper()
	var initErr *udf.InitError
	require.True(t, errors.As(err, &initErr), "expected *udf.InitError, got %v", err)
	return initErr.Code
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name string
		args udf.Args
		code int
	}{
		{
			name: "one argument",
			args: udf.StringArgs("k"),
			code: CodeArity,
		},
		{
			name: "three arguments",
			args: udf.StringArgs("k", "v", "x"),
			code: CodeArity,
		},
		{
			name: "no arguments",
			args: udf.Args{},
			code: CodeArity,
		},
		{
			name: "integer key",
			args: udf.Args{Types: []udf.ArgType{udf.IntArg, udf.StringArg}, Values: []interface{}{int64(1), "v"}},
			code: CodeType,
		},
		{
			name: "real value",
			args: udf.Args{Types: []udf.ArgType{udf.StringArg, udf.RealArg}, Values: []interface{}{"k", 1.5}},
			code: CodeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, dialer := newTestExecutor(t)
			err := exec.ValidateCommand(VerbSet, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, initCode(t, err))
			assert.Equal(t, 0, dialer.Dials(), "invalid arguments never reach the connection")
		})
	}
}

func TestValidateCommand_ConnectsEagerly(t *testing.T) {
	exec, dialer := newTestExecutor(t)

	require.NoError(t, exec.ValidateCommand(VerbSAdd, udf.StringArgs("k", "v")))
	assert.Equal(t, 1, dialer.Dials())
	assert.Empty(t, dialer.Sent(), "validation sends no command")
}

func TestValidateCommand_ConnectFailure(t *testing.T) {
	exec, dialer := newTestExecutor(t)
	dialer.SetFail(true)

	err := exec.ValidateCommand(VerbSet, udf.StringArgs("k", "v"))
	require.Error(t, err)
	assert.Equal(t, CodeConnect, initCode(t, err))
	assert.Contains(t, err.Error(), "Failed to connect to Redis")
	assert.True(t, errors.Is(err, common.ErrConnect))
}

func TestExecuteCommand_SendsCommandOnce(t *testing.T) {
	for _, v := range Verbs() {
		t.Run(v.String(), func(t *testing.T) {
			exec, dialer := newTestExecutor(t)

			res := exec.ExecuteCommand(v, udf.StringArgs("k", "v"))
			assert.Equal(t, udf.Result{Value: ExecOK}, res)
			assert.Equal(t, []string{v.String() + " k v"}, dialer.Sent())
		})
	}
}

func TestExecuteCommand_ConnectFailure(t *testing.T) {
	exec, dialer := newTestExecutor(t)
	dialer.SetFail(true)

	res := exec.ExecuteCommand(VerbSet, udf.StringArgs("k", "v"))
	assert.True(t, res.IsError)
	assert.False(t, res.IsNull)
	assert.Equal(t, ExecConnectFailed, res.Value)
	assert.Empty(t, dialer.Sent(), "no command is sent without a connection")
}

func TestExecuteCommand_DebugLog(t *testing.T) {
	exec, dialer := newTestExecutor(t)

	logFile := filepath.Join(t.TempDir(), "redis_udf.log")
	config := exec.Manager().Config()
	config.Debug = true
	config.LogFile = logFile
	exec.Manager().Reset(config)

	res := exec.ExecuteCommand(VerbSAdd, udf.StringArgs("a", "1"))
	assert.Equal(t, ExecOK, res.Value)
	assert.False(t, res.IsError)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, "SADD a 1\n", string(content))
	assert.Equal(t, []string{"SADD a 1"}, dialer.Sent())

	// lines are appended
	exec.ExecuteCommand(VerbSRem, udf.StringArgs("a", "1"))
	content, err = os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, "SADD a 1\nSREM a 1\n", string(content))
}

func TestExecuteCommand_NoLogWithoutDebug(t *testing.T) {
	exec, _ := newTestExecutor(t)

	logFile := filepath.Join(t.TempDir(), "redis_udf.log")
	config := exec.Manager().Config()
	config.Debug = false
	config.LogFile = logFile
	exec.Manager().Reset(config)

	exec.ExecuteCommand(VerbSet, udf.StringArgs("k", "v"))
	_, err := os.Stat(logFile)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteCommand_LogFailure(t *testing.T) {
	exec, dialer := newTestExecutor(t)

	config := exec.Manager().Config()
	config.Debug = true
	config.LogFile = filepath.Join(t.TempDir(), "missing", "redis_udf.log")
	exec.Manager().Reset(config)

	res := exec.ExecuteCommand(VerbSet, udf.StringArgs("k", "v"))
	assert.Equal(t, ExecLogFailed, res.Value)
	assert.False(t, res.IsError, "a log failure does not set the error flag")
	assert.Empty(t, dialer.Sent())
}

func TestExecuteCommand_ReplyError(t *testing.T) {
	exec, dialer := newTestExecutor(t)
	dialer.replies["SADD"] = transport.Reply{Type: transport.ReplyError, Str: "WRONGTYPE Operation against a key holding the wrong kind of value"}

	res := exec.ExecuteCommand(VerbSAdd, udf.StringArgs("k", "v"))
	assert.True(t, res.IsError)
	assert.Equal(t, ExecReplyError, res.Value)
}

func TestExecuteCommand_TransportFailure(t *testing.T) {
	exec, dialer := newTestExecutor(t)

	conn, err := exec.Manager().Acquire()
	require.NoError(t, err)
	conn.(*fakeConn).doErr = errors.New("connection reset by peer")

	res := exec.ExecuteCommand(VerbSet, udf.StringArgs("k", "v"))
	assert.True(t, res.IsError)
	assert.Equal(t, ExecTransportFailed, res.Value)
	assert.Equal(t, StateFailed, exec.Manager().State())

	// the next call reconnects
	res = exec.ExecuteCommand(VerbSet, udf.StringArgs("k", "v"))
	assert.Equal(t, udf.Result{Value: ExecOK}, res)
	assert.Equal(t, 2, dialer.Dials())
}

func TestExecuteCommand_NullArgument(t *testing.T) {
	exec, dialer := newTestExecutor(t)

	args := udf.Args{Types: []udf.ArgType{udf.StringArg, udf.StringArg}, Values: []interface{}{"k", nil}}
	res := exec.ExecuteCommand(VerbSet, args)
	assert.True(t, res.IsError)
	assert.Equal(t, ExecNullArgument, res.Value)
	assert.Equal(t, 0, dialer.Dials())
}

func TestValidateConfigure(t *testing.T) {
	t.Run("host and port", func(t *testing.T) {
		exec, dialer := newTestExecutor(t)

		args := udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{"10.0.0.1", int64(6379)}}
		require.NoError(t, exec.ValidateConfigure("redis_servers_set", args))

		config := exec.Manager().Config()
		assert.Equal(t, common.ConnTCP, config.Type)
		assert.Equal(t, "10.0.0.1", config.Host)
		assert.Equal(t, 6379, config.Port)
		assert.False(t, config.Auth)
		assert.Empty(t, config.Password)

		assert.Equal(t, 1, dialer.Dials(), "the new server is checked right away")
		assert.Equal(t, "10.0.0.1", dialer.LastConfig().Host)
		assert.Empty(t, dialer.Sent())
	})

	t.Run("with password", func(t *testing.T) {
		exec, dialer := newTestExecutor(t)

		args := udf.Args{
			Types:  []udf.ArgType{udf.StringArg, udf.IntArg, udf.StringArg},
			Values: []interface{}{"10.0.0.1", int64(6379), "secret"},
		}
		require.NoError(t, exec.ValidateConfigure("redis_servers_set", args))

		config := exec.Manager().Config()
		assert.Equal(t, "10.0.0.1", config.Host)
		assert.Equal(t, 6379, config.Port)
		assert.True(t, config.Auth)
		assert.Equal(t, "secret", config.Password)
		assert.Equal(t, []string{"AUTH secret"}, dialer.Sent())
	})

	t.Run("password is cleared by a later call", func(t *testing.T) {
		exec, _ := newTestExecutor(t)

		withPassword := udf.Args{
			Types:  []udf.ArgType{udf.StringArg, udf.IntArg, udf.StringArg},
			Values: []interface{}{"10.0.0.1", int64(6379), "secret"},
		}
		require.NoError(t, exec.ValidateConfigure("redis_servers_set", withPassword))

		withoutPassword := udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{"10.0.0.2", int64(6380)}}
		require.NoError(t, exec.ValidateConfigure("redis_servers_set", withoutPassword))

		config := exec.Manager().Config()
		assert.False(t, config.Auth)
		assert.Empty(t, config.Password)
	})

	t.Run("keeps the log settings", func(t *testing.T) {
		exec, _ := newTestExecutor(t)

		config := exec.Manager().Config()
		config.Debug = true
		config.LogFile = "/var/log/custom.log"
		exec.Manager().Reset(config)

		args := udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{"10.0.0.1", int64(6379)}}
		require.NoError(t, exec.ValidateConfigure("redis_servers_set", args))
		assert.True(t, exec.Manager().Config().Debug)
		assert.Equal(t, "/var/log/custom.log", exec.Manager().Config().LogFile)
	})

	t.Run("unreachable", func(t *testing.T) {
		exec, dialer := newTestExecutor(t)
		dialer.SetFail(true)

		args := udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{"10.0.0.1", int64(6379)}}
		err := exec.ValidateConfigure("redis_servers_set", args)
		require.Error(t, err)
		assert.Equal(t, CodeConnect, initCode(t, err))
		assert.Equal(t, "10.0.0.1", exec.Manager().Config().Host, "the configuration is installed even if the server is down")
	})
}

func TestValidateConfigure_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args udf.Args
		code int
	}{
		{
			name: "host only",
			args: udf.StringArgs("10.0.0.1"),
			code: CodeArity,
		},
		{
			name: "four arguments",
			args: udf.Args{
				Types:  []udf.ArgType{udf.StringArg, udf.IntArg, udf.StringArg, udf.StringArg},
				Values: []interface{}{"h", int64(1), "p", "x"},
			},
			code: CodeArity,
		},
		{
			name: "string port",
			args: udf.StringArgs("10.0.0.1", "6379"),
			code: CodeType,
		},
		{
			name: "integer host",
			args: udf.Args{Types: []udf.ArgType{udf.IntArg, udf.IntArg}, Values: []interface{}{int64(1), int64(6379)}},
			code: CodeType,
		},
		{
			name: "integer password",
			args: udf.Args{
				Types:  []udf.ArgType{udf.StringArg, udf.IntArg, udf.IntArg},
				Values: []interface{}{"10.0.0.1", int64(6379), int64(1)},
			},
			code: CodeType,
		},
		{
			name: "port out of range",
			args: udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{"10.0.0.1", int64(70000)}},
			code: CodeValue,
		},
		{
			name: "NULL host",
			args: udf.Args{Types: []udf.ArgType{udf.StringArg, udf.IntArg}, Values: []interface{}{nil, int64(6379)}},
			code: CodeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, dialer := newTestExecutor(t)
			before := exec.Manager().Config()

			err := exec.ValidateConfigure("redis_servers_set", tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, initCode(t, err))
			assert.Equal(t, before, exec.Manager().Config(), "invalid arguments leave the configuration alone")
			assert.Equal(t, 0, dialer.Dials())
		})
	}
}

func TestExecuteConfigure(t *testing.T) {
	exec, _ := newTestExecutor(t)
	assert.Equal(t, udf.Result{Value: ExecOK}, exec.ExecuteConfigure(udf.Args{}))
}
