package binding

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlejoTorres2001/checker/internal/core/ports/secondary"
)

type fakeModule struct {
	name  string
	funcs map[string]interface{}
	vars  map[string]interface{}
}

var _ secondary.Module = (*fakeModule)(nil)

func (m *fakeModule) Name() string   { return m.name }
func (m *fakeModule) Source() string { return "" }

func (m *fakeModule) Lookup(symbol string) (reflect.Value, error) {
	if fn, ok := m.funcs[symbol]; ok {
		return reflect.ValueOf(fn), nil
	}
	if v, ok := m.vars[symbol]; ok {
		return reflect.ValueOf(v), nil
	}
	return reflect.Value{}, fmt.Errorf("symbol %s.%s is not defined", m.name, symbol)
}

func TestBind(t *testing.T) {
	mod := &fakeModule{
		name: "exam",
		funcs: map[string]interface{}{
			"LoadMatrix": func(rows, cols int) [][]string { return nil },
		},
		vars: map[string]interface{}{
			"NotAFunction": 42,
		},
	}

	ns := Bind(mod, []string{"LoadMatrix", "CountLetters", "NotAFunction"})
	assert.Equal(t, []string{"CountLetters", "NotAFunction"}, ns.Missing())
}

func TestNamespace_Call(t *testing.T) {
	sentinel := errors.New("boom")
	mod := &fakeModule{
		name: "exam",
		funcs: map[string]interface{}{
			"Add":      func(a, b int) int { return a + b },
			"Scale":    func(f float64) float64 { return f * 2 },
			"Divide":   func(a, b int) (int, error) { return a / b, nil },
			"Fails":    func() error { return sentinel },
			"Panics":   func() { panic("kaboom") },
			"Multiple": func() (int, string) { return 7, "siete" },
			"Variadic": func(prefix string, ns ...int) int { return len(ns) },
		},
	}
	ns := Bind(mod, []string{"Add", "Scale", "Divide", "Fails", "Panics", "Multiple", "Variadic", "Missing"})

	t.Run("invokes a bound function", func(t *testing.T) {
		got, err := ns.Call("Add", 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("converts convertible arguments", func(t *testing.T) {
		got, err := ns.Call("Scale", 3)
		require.NoError(t, err)
		assert.Equal(t, 6.0, got)
	})

	t.Run("splits a trailing error result", func(t *testing.T) {
		got, err := ns.Call("Divide", 6, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, got)

		got, err = ns.Call("Fails")
		require.ErrorIs(t, err, sentinel)
		assert.Nil(t, got)
	})

	t.Run("returns multiple results as a slice", func(t *testing.T) {
		got, err := ns.Call("Multiple")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{7, "siete"}, got)
	})

	t.Run("supports variadic callees", func(t *testing.T) {
		got, err := ns.Call("Variadic", "n", 1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("recovers panics from the callee", func(t *testing.T) {
		_, err := ns.Call("Panics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kaboom")
	})

	t.Run("missing symbol fails only when invoked", func(t *testing.T) {
		_, err := ns.Call("Missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `Function "Missing" not found.`)
	})

	t.Run("undeclared symbol is rejected", func(t *testing.T) {
		_, err := ns.Call("NeverDeclared")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `Function "NeverDeclared" not found.`)
	})

	t.Run("wrong arity is reported", func(t *testing.T) {
		_, err := ns.Call("Add", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expects 2 arguments")
	})

	t.Run("inconvertible argument is reported", func(t *testing.T) {
		_, err := ns.Call("Add", "uno", "dos")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not assignable")
	})
}
