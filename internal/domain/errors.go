package domain

import "errors"

// ErrSubmissionsDirNotFound is the batch-level precondition failure: the
// submissions directory does not exist, so no partial report is produced.
var ErrSubmissionsDirNotFound = errors.New("submissions directory not found")
