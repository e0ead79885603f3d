package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SubmissionResult is the per-student envelope of the report contract.
// Either a full run (ordered outcome records plus both raw sources) or a
// pre-test failure (a single synthetic record, empty sources).
type SubmissionResult struct {
	Results    []OutcomeRecord `json:"results"`
	Exam       string          `json:"exam"`
	TestCode   string          `json:"testCode"`
	Assignment *Assignment     `json:"assignment"`
}

// LoadFailure reports whether this result is a pre-test failure envelope.
func (r *SubmissionResult) LoadFailure() bool {
	return len(r.Results) == 1 && r.Results[0].Result == StatusLoadFailed
}

// BatchReport maps every discovered student to their SubmissionResult.
// Students holds directory-listing order; Results is keyed by student name.
type BatchReport struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Students    []string
	Results     map[string]*SubmissionResult
}

// NewBatchReport creates an empty batch report.
func NewBatchReport() *BatchReport {
	return &BatchReport{
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
		Results:     make(map[string]*SubmissionResult),
	}
}

// Add inserts one student's result, preserving insertion order.
func (b *BatchReport) Add(student string, result *SubmissionResult) {
	if _, exists := b.Results[student]; !exists {
		b.Students = append(b.Students, student)
	}
	b.Results[student] = result
}

// MarshalJSON serializes the report as a student-keyed object in insertion
// order, the shape the downstream delivery collaborator consumes.
func (b *BatchReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, student := range b.Students {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(student)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.Results[student])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
