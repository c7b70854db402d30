package udf

import (
	"fmt"
	"github.com/puzpuzpuz/xsync/v3"
	"sort"
)

// Registry maps function names to functions. It plays the role of the host's
// function table (CREATE FUNCTION ... SONAME) and is safe for concurrent use.
type Registry struct {
	functions *xsync.MapOf[string, Function]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		functions: xsync.NewMapOf[string, Function](),
	}
}

// Register adds a function under its name.
// Returns ErrAlreadyExists if the name is taken.
func (r *Registry) Register(fn Function) error {
	if fn.Name() == "" {
		return ErrEmptyName
	}
	if _, loaded := r.functions.LoadOrStore(fn.Name(), fn); loaded {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, fn.Name())
	}
	return nil
}

// Unregister removes a function, the counterpart of DROP FUNCTION
func (r *Registry) Unregister(name string) error {
	if _, loaded := r.functions.LoadAndDelete(name); !loaded {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Get returns the function registered under name
func (r *Registry) Get(name string) (Function, bool) {
	return r.functions.Load(name)
}

// List returns the sorted names of all registered functions
func (r *Registry) List() []string {
	names := make([]string, 0, r.functions.Size())
	r.functions.Range(func(name string, _ Function) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Call invokes a function the way the host does for a single row statement:
// Init, then Exec, then Deinit. An Init failure is returned as error (an *InitError
// for functions of this module) and Exec is skipped.
func (r *Registry) Call(name string, args Args) (Result, error) {
	fn, ok := r.functions.Load(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := fn.Init(args); err != nil {
		return Result{}, err
	}
	defer fn.Deinit()

	return fn.Exec(args), nil
}
