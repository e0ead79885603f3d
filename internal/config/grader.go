package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GraderConfig holds the filesystem layout and execution limits of one
// grading run. Directory names follow the original course setup.
type GraderConfig struct {
	SubmissionsDir string
	TestsDir       string
	TestFilename   string
	AssignmentFile string
	ReportsDir     string
	TestTimeout    time.Duration
}

func NewGraderConfig() *GraderConfig {
	timeoutSec, err := strconv.Atoi(os.Getenv("TEST_TIMEOUT_SEC"))
	if err != nil || timeoutSec < 0 {
		timeoutSec = 10
	}
	return &GraderConfig{
		SubmissionsDir: getEnv("EXAMS_DIR", "parciales"),
		TestsDir:       getEnv("TESTS_DIR", "tests"),
		TestFilename:   getEnv("TEST_FILENAME", "ejb_suite.go"),
		AssignmentFile: getEnv("ASSIGNMENT_FILE", "assignments/ejB.yaml"),
		ReportsDir:     getEnv("REPORTS_DIR", "informes"),
		TestTimeout:    time.Duration(timeoutSec) * time.Second,
	}
}

// SuitePath is the full path of the Test Suite Definition file.
func (c *GraderConfig) SuitePath() string {
	return filepath.Join(c.TestsDir, c.TestFilename)
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
