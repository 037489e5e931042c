// This file contains the ambient-setting overrides resolved at startup.

package config

import (
	"os"
	"strings"
)

// ambientOverride declares a single ambient setting. Each entry maps a key to
// a function that applies the resolved value to the configuration. The config
// file is consulted first; a key absent from the file falls back to the
// process environment.
type ambientOverride struct {
	key   string
	apply func(*Config, string)
}

// ambientOverrides is the declarative table of all ambient settings. These
// keys tune the orchestrator itself; everything else in the config file is
// opaque and only relayed to child processes.
var ambientOverrides = []ambientOverride{
	{"OUTPUT_DIR", func(c *Config, v string) {
		if v != "" {
			c.OutputDir = v
		}
	}},
	{"PYTHON_BIN", func(c *Config, v string) {
		if v != "" {
			c.PythonBin = v
		}
	}},
	{"RUN_SAMPLE_ANALYSIS", func(c *Config, v string) {
		c.RunSampleAnalysis = parseBoolEnv(v, c.RunSampleAnalysis)
	}},
	{"STEP_OUTPUT", func(c *Config, v string) {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case StepOutputCapture:
			c.StepOutput = StepOutputCapture
		case StepOutputPassthrough:
			c.StepOutput = StepOutputPassthrough
		}
	}},
	{"LOG_LEVEL", func(c *Config, v string) {
		if v != "" {
			c.LogLevel = v
		}
	}},
	{"LOG_FORMAT", func(c *Config, v string) {
		if v != "" {
			c.LogFormat = v
		}
	}},
	{"TRACE_FILE", func(c *Config, v string) {
		c.TraceFile = v
	}},
	// An explicitly empty METRICS_FILE disables the metrics file.
	{"METRICS_FILE", func(c *Config, v string) {
		c.MetricsFile = v
	}},
}

// parseBoolEnv parses a boolean setting value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyAmbientOverrides resolves every ambient setting for the configuration.
// Resolution order: config-file value (including explicitly empty ones), then
// a non-empty process environment variable, then the default already present
// on the Config.
func applyAmbientOverrides(cfg *Config) {
	for _, o := range ambientOverrides {
		if val, ok := cfg.Values[o.key]; ok {
			o.apply(cfg, val)
			continue
		}
		if val := os.Getenv(o.key); val != "" {
			o.apply(cfg, val)
		}
	}
}
