// Package config handles huescore configuration
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

type Config struct {
	Folder            string  // folder scanned for .jpg/.png files
	ReportPath        string  // score report, overwritten each run
	Workers           int     // pool size per phase
	UniformScore      float64 // score given to every image when all counts are equal
	PreviewDir        string  // region previews are written here when set
	DuplicateDistance int     // fingerprint distance for duplicate warnings, < 0 disables
	LogLevel          string
}

func Load() *Config {
	cfg := &Config{
		Folder:            getEnv("HUESCORE_FOLDER", "hue"),
		ReportPath:        getEnv("HUESCORE_REPORT", "scores.txt"),
		Workers:           getEnvInt("HUESCORE_WORKERS", 0),
		UniformScore:      getEnvFloat("HUESCORE_UNIFORM_SCORE", 0),
		PreviewDir:        getEnv("HUESCORE_PREVIEW_DIR", ""),
		DuplicateDistance: getEnvInt("HUESCORE_DUPLICATE_DISTANCE", -1),
		LogLevel:          strings.ToLower(getEnv("HUESCORE_LOG_LEVEL", "info")),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.UniformScore < 0 {
		cfg.UniformScore = 0
	}
	if cfg.UniformScore > 100 {
		cfg.UniformScore = 100
	}
	return cfg
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// DetectDuplicates reports whether fingerprint checks are enabled.
func (c *Config) DetectDuplicates() bool {
	return c.DuplicateDistance >= 0
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
