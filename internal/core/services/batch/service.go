package batch

import (
	"context"

	"github.com/AlejoTorres2001/checker/internal/domain"
)

// IBatchService drives the per-submission runner over every eligible file
// in the submissions directory and assembles the batch report.
type IBatchService interface {
	// RunBatch grades every submission in the configured directory. It fails
	// only on the batch-level precondition (missing directory); individual
	// submission failures are recorded in the report, never escalated.
	RunBatch(ctx context.Context) (*domain.BatchReport, error)
}
