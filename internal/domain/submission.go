package domain

import (
	"path/filepath"
	"strings"
)

// Submission is one student's source file under evaluation. The student
// identity is the filename stem; the file itself is never mutated.
type Submission struct {
	Student string
	Path    string
}

// NewSubmission derives a submission from a source file path.
func NewSubmission(path string) *Submission {
	base := filepath.Base(path)
	return &Submission{
		Student: strings.TrimSuffix(base, filepath.Ext(base)),
		Path:    path,
	}
}
