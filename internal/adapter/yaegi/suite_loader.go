package yaegi

import (
	"context"
	"fmt"

	"github.com/AlejoTorres2001/checker/internal/core/ports/secondary"
	"github.com/AlejoTorres2001/checker/internal/domain"
)

// suiteNamespace is the namespace name suite files are loaded under when
// they carry no package clause of their own.
const suiteNamespace = "suite"

// SuiteLoader interprets a Test Suite Definition and collects the test
// cases it registers. The suite must export
//
//	func Register(add func(name, description string, run func(call func(name string, args ...interface{}) (interface{}, error)) (string, error)))
//
// and call add once per case. Cases are kept in registration order.
type SuiteLoader struct {
	loader *Loader
}

var _ secondary.SuiteLoader = (*SuiteLoader)(nil)

// NewSuiteLoader creates a suite loader on top of the module loader.
func NewSuiteLoader(loader *Loader) *SuiteLoader {
	return &SuiteLoader{loader: loader}
}

// LoadSuite loads the suite source in its own fresh interpreter and
// enumerates its registered cases.
func (s *SuiteLoader) LoadSuite(ctx context.Context, path string) (suite *domain.TestSuite, err error) {
	mod, err := s.loader.load(ctx, suiteNamespace, path)
	if err != nil {
		return nil, err
	}

	regv, err := mod.Lookup("Register")
	if err != nil {
		return nil, fmt.Errorf("suite does not export Register: %w", err)
	}

	register, ok := regv.Interface().(func(domain.AddFunc))
	if !ok {
		return nil, fmt.Errorf("suite Register has unexpected signature %T", regv.Interface())
	}

	// Register runs interpreted code; a panic there is a suite load failure.
	defer func() {
		if r := recover(); r != nil {
			suite = nil
			err = fmt.Errorf("suite registration panicked: %v", r)
		}
	}()

	var cases []domain.TestCase
	register(func(name, description string, run domain.RunFunc) {
		if run == nil {
			return
		}
		cases = append(cases, domain.TestCase{
			Name:        name,
			Description: description,
			Run:         run,
		})
	})

	return &domain.TestSuite{
		Path:   path,
		Source: mod.Source(),
		Cases:  cases,
	}, nil
}
