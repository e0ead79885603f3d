package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Assignment describes one graded exercise: which suite file exercises it
// and which symbols every submission is expected to define. The symbol list
// drives the tolerant binding step; it is configuration, never inferred from
// the suite's source text.
type Assignment struct {
	ID      string   `yaml:"id" json:"id"`
	Title   string   `yaml:"title" json:"title"`
	Symbols []string `yaml:"symbols" json:"symbols"`
	Rubric  string   `yaml:"rubric" json:"rubric"`
}

// LoadAssignment reads an assignment definition from a YAML file.
func LoadAssignment(path string) (*Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assignment file: %w", err)
	}

	var a Assignment
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse assignment file: %w", err)
	}

	if a.ID == "" {
		return nil, fmt.Errorf("assignment file %s has no id", path)
	}

	return &a, nil
}
