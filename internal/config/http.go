package config

import (
	"os"
	"strconv"
)

// HTTPConfig configures the optional serve mode that exposes grading runs
// to the downstream reporting collaborators.
type HTTPConfig struct {
	Enabled bool
	Port    int
}

func NewHTTPConfig() *HTTPConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil || port <= 0 {
		port = 8082
	}
	return &HTTPConfig{
		Enabled: os.Getenv("SERVE_MODE") == "true",
		Port:    port,
	}
}
