// Package binding builds the bound namespace a test suite runs against:
// every symbol the assignment requires is either the submission's own
// implementation or a stub that fails only when actually invoked. Missing
// functions therefore surface as per-test errors, never as a load abort.
package binding

import (
	"fmt"
	"reflect"

	"github.com/AlejoTorres2001/checker/internal/core/ports/secondary"
	"github.com/AlejoTorres2001/checker/internal/domain"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Namespace is the live binding of one submission's functions under the
// contract the assignment declares.
type Namespace struct {
	funcs   map[string]reflect.Value
	stubs   map[string]error
	missing []string
}

// Bind resolves every required symbol against the loaded module. Symbols
// that cannot be resolved, or resolve to something that is not a function,
// are bound to call-time stubs carrying the lookup failure.
func Bind(mod secondary.Module, symbols []string) *Namespace {
	ns := &Namespace{
		funcs: make(map[string]reflect.Value, len(symbols)),
		stubs: make(map[string]error),
	}

	for _, sym := range symbols {
		v, err := mod.Lookup(sym)
		if err != nil {
			ns.stubs[sym] = err
			ns.missing = append(ns.missing, sym)
			continue
		}
		if v.Kind() != reflect.Func {
			ns.stubs[sym] = fmt.Errorf("symbol %q is not a function", sym)
			ns.missing = append(ns.missing, sym)
			continue
		}
		ns.funcs[sym] = v
	}

	return ns
}

// Missing returns the required symbols the submission did not define, in
// contract order.
func (ns *Namespace) Missing() []string {
	return ns.missing
}

// Caller returns the dispatcher handed to suite test cases.
func (ns *Namespace) Caller() domain.SymbolCall {
	return ns.Call
}

// Call invokes a bound function by name. Invoking a stubbed symbol fails
// with a reason containing `Function "<name>" not found.` plus the
// underlying cause; symbols never invoked incur no penalty.
func (ns *Namespace) Call(name string, args ...interface{}) (res interface{}, err error) {
	if cause, ok := ns.stubs[name]; ok {
		return nil, fmt.Errorf("Function %q not found. %v", name, cause)
	}
	fn, ok := ns.funcs[name]
	if !ok {
		return nil, fmt.Errorf("Function %q not found. symbol is not part of the assignment contract", name)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()

	in, err := buildArgs(fn.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("cannot call %s: %w", name, err)
	}
	return splitResults(fn.Call(in))
}

// buildArgs converts the dispatcher's loosely typed arguments to the
// callee's parameter types, converting numerics and named types where Go
// conversion rules allow it.
func buildArgs(ft reflect.Type, args []interface{}) ([]reflect.Value, error) {
	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("expects at least %d arguments, got %d", ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("expects %d arguments, got %d", ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for idx, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && idx >= ft.NumIn()-1 {
			pt = ft.In(ft.NumIn() - 1).Elem()
		} else {
			pt = ft.In(idx)
		}

		if arg == nil {
			in[idx] = reflect.Zero(pt)
			continue
		}

		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(pt):
		case v.Type().ConvertibleTo(pt):
			v = v.Convert(pt)
		default:
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", idx, v.Type(), pt)
		}
		in[idx] = v
	}
	return in, nil
}

// splitResults maps the callee's results onto the dispatcher contract: a
// trailing error is split out, a single remaining value is returned bare,
// multiple values are returned as a slice.
func splitResults(out []reflect.Value) (interface{}, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]interface{}, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, nil
	}
}
