package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlejoTorres2001/checker/internal/core/ports/primary"
	"github.com/AlejoTorres2001/checker/internal/core/services/grader"
	"github.com/AlejoTorres2001/checker/internal/domain"
)

// submissionExt is the only file extension eligible for grading.
const submissionExt = ".go"

var _ IBatchService = (*BatchService)(nil)

// BatchService implements the batch orchestrator. Submissions are processed
// strictly sequentially, in directory-listing order; each one gets exactly
// one entry in the report no matter how it fails.
type BatchService struct {
	grader         grader.IGraderService
	submissionsDir string
	logger         primary.Logger
}

// NewBatchService creates a new batch orchestrator.
func NewBatchService(graderSvc grader.IGraderService, submissionsDir string, logger primary.Logger) *BatchService {
	return &BatchService{
		grader:         graderSvc,
		submissionsDir: submissionsDir,
		logger:         logger,
	}
}

// RunBatch grades every eligible submission in the directory.
func (s *BatchService) RunBatch(ctx context.Context) (*domain.BatchReport, error) {
	entries, err := os.ReadDir(s.submissionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionsDirNotFound, s.submissionsDir)
		}
		return nil, fmt.Errorf("failed to list submissions directory: %w", err)
	}

	var submissions []*domain.Submission
	for _, entry := range entries {
		if !eligible(entry) {
			continue
		}
		submissions = append(submissions, domain.NewSubmission(filepath.Join(s.submissionsDir, entry.Name())))
	}

	s.logger.Info("Found valid submission files", "count", len(submissions), "dir", s.submissionsDir)

	report := domain.NewBatchReport()
	for i, submission := range submissions {
		s.logger.Info(fmt.Sprintf("[%d/%d] Running tests for student: %s", i+1, len(submissions), submission.Student))
		result := s.grader.RunSubmission(ctx, submission)
		report.Add(submission.Student, result)
		s.logger.Info("Completed tests for student", "student", submission.Student, "loadFailure", result.LoadFailure())
	}

	s.logger.Info("All tests completed", "runId", report.RunID, "students", len(report.Students))
	return report, nil
}

// eligible filters directory entries down to gradable submission files.
// Underscore-prefixed files are editor/toolchain scratch and are skipped.
func eligible(entry os.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	name := entry.Name()
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return false
	}
	return filepath.Ext(name) == submissionExt
}
