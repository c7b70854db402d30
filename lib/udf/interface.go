package udf

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Argument Types
// --------------------------------------------------------------------------

// ArgType is the type the host reports for a single function argument
type ArgType int

const (
	StringArg ArgType = iota
	RealArg
	IntArg
	DecimalArg
)

func (t ArgType) String() string {
	switch t {
	case StringArg:
		return "string"
	case RealArg:
		return "real"
	case IntArg:
		return "integer"
	case DecimalArg:
		return "decimal"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

// Args holds the arguments the host passes to a function.
// Types and Values have the same length. A nil value is a SQL NULL
// (or a value that is not constant at init time).
// Values are string for StringArg, int64 for IntArg and float64 for RealArg.
type Args struct {
	Types  []ArgType
	Values []interface{}
}

// Count returns the number of arguments
func (a Args) Count() int {
	return len(a.Types)
}

// String returns argument i as a string and whether it was a non-NULL string
func (a Args) String(i int) (string, bool) {
	if i < 0 || i >= len(a.Values) {
		return "", false
	}
	s, ok := a.Values[i].(string)
	return s, ok
}

// Int returns argument i as an int64 and whether it was a non-NULL integer
func (a Args) Int(i int) (int64, bool) {
	if i < 0 || i >= len(a.Values) {
		return 0, false
	}
	n, ok := a.Values[i].(int64)
	return n, ok
}

// StringArgs builds Args where every value is a string
func StringArgs(values ...string) Args {
	args := Args{
		Types:  make([]ArgType, len(values)),
		Values: make([]interface{}, len(values)),
	}
	for i, v := range values {
		args.Types[i] = StringArg
		args.Values[i] = v
	}
	return args
}

// Append returns a copy of a with one more argument
func (a Args) Append(t ArgType, v interface{}) Args {
	return Args{
		Types:  append(append([]ArgType{}, a.Types...), t),
		Values: append(append([]interface{}{}, a.Values...), v),
	}
}

// --------------------------------------------------------------------------
// Results
// --------------------------------------------------------------------------

// Result is what an integer function hands back to the host
type Result struct {
	// Value is the integer result of the function
	Value int64
	// IsNull signals a SQL NULL result
	IsNull bool
	// IsError signals that the call failed. The host reports no message for it.
	IsError bool
}

// InitError is returned by Function.Init. Message is shown to the caller,
// Code is the status the host receives from the init callback.
type InitError struct {
	Code    int
	Message string
	Err     error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (code %d): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// --------------------------------------------------------------------------
// Function
// --------------------------------------------------------------------------

// Function is a single host callable function with the init, exec and deinit callbacks
// the host invokes for every statement using it
type Function interface {
	// Name returns the name the function is registered under
	Name() string
	// Init checks the argument shape before the statement runs.
	// A non-nil error aborts the statement, its message is surfaced to the caller.
	Init(args Args) error
	// Exec runs the function once per row
	Exec(args Args) Result
	// Deinit releases everything Init allocated
	Deinit()
}
