package secondary

import (
	"context"
	"reflect"

	"github.com/AlejoTorres2001/checker/internal/domain"
)

// Module is a freshly loaded submission namespace. Each Load produces an
// isolated module; nothing is installed into any shared registry, so two
// submissions can never see each other's symbols.
type Module interface {
	// Name returns the namespace name the module was loaded under.
	Name() string

	// Lookup resolves a top-level symbol to a callable value. It returns an
	// error when the symbol does not exist in the module.
	Lookup(symbol string) (reflect.Value, error)

	// Source returns the raw source text the module was loaded from.
	Source() string
}

// ModuleLoader loads an arbitrary source file into a fresh, isolated module
// given a namespace name and a file path.
type ModuleLoader interface {
	Load(ctx context.Context, name, path string) (Module, error)
}

// SuiteLoader loads a Test Suite Definition and enumerates its registered
// test cases in declaration order.
type SuiteLoader interface {
	LoadSuite(ctx context.Context, path string) (*domain.TestSuite, error)
}
