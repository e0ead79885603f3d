package grader

import (
	"context"
	"fmt"
	"time"

	"github.com/AlejoTorres2001/checker/internal/core/binding"
	"github.com/AlejoTorres2001/checker/internal/core/ports/primary"
	"github.com/AlejoTorres2001/checker/internal/core/ports/secondary"
	"github.com/AlejoTorres2001/checker/internal/domain"
)

// submissionAlias is the fixed namespace name a submission is loaded under.
const submissionAlias = "exam"

// Operator-facing descriptions of the synthetic failure records.
const (
	descModuleLoadError    = "El módulo del estudiante no pudo cargarse"
	descSuiteLoadError     = "El módulo de tests no pudo cargarse"
	descTestExecutionError = "Error durante la ejecución de los tests"
)

var _ IGraderService = (*GraderService)(nil)

// GraderService implements the per-submission runner. It advances through
// loading the submission, loading the suite and executing it; a failure in
// either loading stage short-circuits into a single synthetic record, while
// per-test failures during execution are recorded and never abort the run.
type GraderService struct {
	loader      secondary.ModuleLoader
	suiteLoader secondary.SuiteLoader
	assignment  *domain.Assignment
	suitePath   string
	testTimeout time.Duration
	logger      primary.Logger
}

// NewGraderService creates a new per-submission runner.
func NewGraderService(
	loader secondary.ModuleLoader,
	suiteLoader secondary.SuiteLoader,
	assignment *domain.Assignment,
	suitePath string,
	testTimeout time.Duration,
	logger primary.Logger,
) *GraderService {
	return &GraderService{
		loader:      loader,
		suiteLoader: suiteLoader,
		assignment:  assignment,
		suitePath:   suitePath,
		testTimeout: testTimeout,
		logger:      logger,
	}
}

// RunSubmission runs the full pipeline for one submission.
func (s *GraderService) RunSubmission(ctx context.Context, submission *domain.Submission) *domain.SubmissionResult {
	s.logger.Debug("Loading submission", "student", submission.Student, "path", submission.Path)

	mod, err := s.loader.Load(ctx, submissionAlias, submission.Path)
	if err != nil {
		s.logger.Warn("Submission failed to load", "student", submission.Student, "error", err)
		return s.failure(domain.SyntheticModuleLoadError, descModuleLoadError, err)
	}

	// Binding is the caller's explicit step: only the submission's namespace
	// takes part in symbol resolution, and it is rebuilt from scratch here
	// for every submission.
	ns := binding.Bind(mod, s.assignment.Symbols)
	if missing := ns.Missing(); len(missing) > 0 {
		s.logger.Debug("Submission is missing required symbols", "student", submission.Student, "symbols", missing)
	}

	s.logger.Debug("Loading test suite", "path", s.suitePath)
	suite, err := s.suiteLoader.LoadSuite(ctx, s.suitePath)
	if err != nil {
		s.logger.Warn("Test suite failed to load", "student", submission.Student, "error", err)
		return s.failure(domain.SyntheticSuiteLoadError, descSuiteLoadError, err)
	}

	collector := NewCollector()
	if err := s.execute(ctx, suite, ns, collector); err != nil {
		s.logger.Error("Test execution aborted", "student", submission.Student, "error", err)
		return s.failure(domain.SyntheticExecutionError, descTestExecutionError, err)
	}

	return &domain.SubmissionResult{
		Results:    collector.Records(),
		Exam:       mod.Source(),
		TestCode:   suite.Source,
		Assignment: s.assignment,
	}
}

// execute runs every registered case sequentially through the collector.
// Individual case failures are outcomes, not errors; only a harness-level
// fault makes execute itself fail.
func (s *GraderService) execute(ctx context.Context, suite *domain.TestSuite, ns *binding.Namespace, collector *Collector) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("test driver panicked: %v", r)
		}
	}()

	for _, tc := range suite.Cases {
		s.runCase(ctx, tc, ns, collector)
	}
	return nil
}

type caseOutcome struct {
	failure string
	err     error
}

// runCase executes one case under the wall-clock budget and reports the
// outcome to the collector. A panic inside the case is an ERROR for that
// case only.
func (s *GraderService) runCase(ctx context.Context, tc domain.TestCase, ns *binding.Namespace, collector *Collector) {
	done := make(chan caseOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- caseOutcome{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		failure, err := tc.Run(ns.Caller())
		done <- caseOutcome{failure: failure, err: err}
	}()

	var budget <-chan time.Time
	if s.testTimeout > 0 {
		timer := time.NewTimer(s.testTimeout)
		defer timer.Stop()
		budget = timer.C
	}

	select {
	case out := <-done:
		switch {
		case out.err != nil:
			collector.AddError(tc.Name, tc.Description, out.err.Error())
		case out.failure != "":
			collector.AddFailure(tc.Name, tc.Description, out.failure)
		default:
			collector.AddSuccess(tc.Name, tc.Description)
		}
	case <-budget:
		collector.AddError(tc.Name, tc.Description, fmt.Sprintf("test exceeded the %s wall-clock budget", s.testTimeout))
	case <-ctx.Done():
		collector.AddError(tc.Name, tc.Description, ctx.Err().Error())
	}
}

// failure builds the single-record envelope for a pipeline-stage failure.
func (s *GraderService) failure(test, description string, err error) *domain.SubmissionResult {
	return &domain.SubmissionResult{
		Results: []domain.OutcomeRecord{{
			Test:        test,
			Description: description,
			Result:      domain.StatusLoadFailed,
			Reason:      err.Error(),
		}},
		Assignment: s.assignment,
	}
}
