// Package env reads the environment variables that provide defaults for
// command-line flags.
package env

import (
	"os"
	"strings"
)

const (
	Prefix      = "VSPEC_PREFIX"       // install prefix
	Names       = "VSPEC_NAMES"        // TOML flag naming table
	Resolved    = "VSPEC_RESOLVED"     // YAML resolution manifest
	BuildSystem = "VSPEC_BUILD_SYSTEM" // cmake or autotools
	FormulaPath = "VSPEC_FORMULA_PATH" // formula store directory
	LogLevel    = "VSPEC_LOG_LEVEL"
	LogFormat   = "VSPEC_LOG_FORMAT"
)

// Get returns the trimmed value of key, or def when it is unset or blank.
func Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
