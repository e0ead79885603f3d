package yaegi

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/AlejoTorres2001/checker/internal/core/ports/secondary"
)

var packageClause = regexp.MustCompile(`(?m)^[ \t]*package[ \t]+([A-Za-z_][A-Za-z0-9_]*)`)

// Loader loads Go source files into fresh yaegi interpreters. Every Load
// builds a brand-new interpreter, so loaded modules are fully isolated from
// each other; nothing is shared between two submissions.
type Loader struct{}

var _ secondary.ModuleLoader = (*Loader)(nil)

// NewLoader creates a new interpreter-backed module loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Module wraps one interpreter holding one evaluated source file.
type Module struct {
	name   string
	pkg    string
	source string
	interp *interp.Interpreter
}

var _ secondary.Module = (*Module)(nil)

// Load reads and evaluates the file's top-level code in a fresh interpreter
// and returns the resulting namespace. It fails when the path does not
// exist, the source does not parse, or top-level code fails to evaluate.
func (l *Loader) Load(ctx context.Context, name, path string) (secondary.Module, error) {
	return l.load(ctx, name, path)
}

func (l *Loader) load(ctx context.Context, name, path string) (mod *Module, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module source: %w", err)
	}
	source := string(data)

	// Top-level code runs on load; an interpreter panic must surface as a
	// load error, not kill the batch.
	defer func() {
		if r := recover(); r != nil {
			mod = nil
			err = fmt.Errorf("module %q panicked during load: %v", name, r)
		}
	}()

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib symbols: %w", err)
	}

	pkg := name
	src := source
	if m := packageClause.FindStringSubmatch(source); m != nil {
		pkg = m[1]
	} else {
		// Bare top-level definitions are accepted and wrapped under the
		// requested namespace name.
		src = fmt.Sprintf("package %s\n\n%s", name, source)
	}

	if _, err := i.EvalWithContext(ctx, src); err != nil {
		return nil, fmt.Errorf("failed to evaluate module %q: %w", name, err)
	}

	return &Module{name: name, pkg: pkg, source: source, interp: i}, nil
}

// Name returns the namespace name the module was loaded under.
func (m *Module) Name() string {
	return m.name
}

// Source returns the raw source text the module was loaded from.
func (m *Module) Source() string {
	return m.source
}

// Lookup resolves a top-level symbol of the loaded package.
func (m *Module) Lookup(symbol string) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = reflect.Value{}
			err = fmt.Errorf("lookup of %s.%s panicked: %v", m.pkg, symbol, r)
		}
	}()

	v, err = m.interp.Eval(m.pkg + "." + symbol)
	if err != nil {
		return reflect.Value{}, err
	}
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("symbol %s.%s is not defined", m.pkg, symbol)
	}
	return v, nil
}
