package grader

import (
	"context"

	"github.com/AlejoTorres2001/checker/internal/domain"
)

// IGraderService runs one submission against the assignment's test suite
// and always yields exactly one result, regardless of failure mode.
type IGraderService interface {
	// RunSubmission loads the submission, binds the assignment's required
	// symbols, executes the suite and returns the result envelope. Pipeline
	// failures before test execution become a single synthetic record.
	RunSubmission(ctx context.Context, submission *domain.Submission) *domain.SubmissionResult
}
