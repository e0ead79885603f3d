package config

import "os"

type AppConfig struct {
	DebugMode bool
	GraderCfg *GraderConfig
	HTTPCfg   *HTTPConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode: os.Getenv("DEBUG_MODE") == "true",
		GraderCfg: NewGraderConfig(),
		HTTPCfg:   NewHTTPConfig(),
	}
}
