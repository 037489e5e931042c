// Package config defines the pipeline configuration: the values loaded from
// the required config.env file, the ambient settings resolved from them, and
// the environment handed to child processes.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	// ConfigFileName is the configuration file required in the working directory.
	ConfigFileName = "config.env"
	// ConfigTemplateName is the template operators copy to create ConfigFileName.
	ConfigTemplateName = "config.env.example"

	// DefaultOutputDir receives analysis artifacts when OUTPUT_DIR is not set.
	DefaultOutputDir = "./output"
	// DefaultPythonBin runs the dependency probe and the analysis scripts.
	DefaultPythonBin = "python3"
	// DefaultMetricsFile is the run-metrics file written into the output
	// directory in Prometheus text format.
	DefaultMetricsFile = "pipeline_metrics.prom"

	// DependencyModule is the Python module the analysis scripts require.
	DependencyModule = "pymysql"
	// DependencyInstallHint is the remediation command shown when the
	// dependency probe fails.
	DependencyInstallHint = "pip install pymysql"
)

// Child process output modes.
const (
	// StepOutputPassthrough streams child stdout/stderr straight to the
	// terminal while a step runs. This is the default.
	StepOutputPassthrough = "passthrough"
	// StepOutputCapture buffers child output and shows a progress spinner;
	// the buffered tail is printed only when the step fails.
	StepOutputCapture = "capture"
)

// Config carries everything a pipeline run needs: the raw key/value pairs
// from config.env (relayed verbatim to child processes) and the ambient
// settings resolved from those pairs, the process environment, and defaults.
type Config struct {
	// ConfigFile is the path the values were loaded from.
	ConfigFile string
	// Values holds the key/value pairs parsed from the config file.
	Values map[string]string

	// OutputDir is the resolved destination directory for analysis artifacts.
	OutputDir string
	// PythonBin is the interpreter for the probe and the analysis steps.
	PythonBin string
	// RunSampleAnalysis enables the optional sample-account analysis step.
	RunSampleAnalysis bool
	// StepOutput selects how child output is handled; see StepOutput* constants.
	StepOutput string
	// LogLevel sets the logger level (zerolog level names).
	LogLevel string
	// LogFormat selects "console" or "json" log output.
	LogFormat string
	// TraceFile, when non-empty, enables span export to the named file.
	TraceFile string
	// MetricsFile is the metrics filename written into OutputDir after the
	// run. Empty disables the metrics file.
	MetricsFile string
	// RunID uniquely identifies this pipeline run in logs, metrics and traces.
	RunID string
}

// New builds a Config from the parsed config-file values. Ambient settings
// resolve with the precedence of a sourced env file: config-file value, then
// process environment, then default.
func New(path string, values map[string]string) *Config {
	if values == nil {
		values = map[string]string{}
	}
	cfg := &Config{
		ConfigFile:  path,
		Values:      values,
		OutputDir:   DefaultOutputDir,
		PythonBin:   DefaultPythonBin,
		StepOutput:  StepOutputPassthrough,
		LogLevel:    "info",
		LogFormat:   "console",
		MetricsFile: DefaultMetricsFile,
		RunID:       uuid.New().String(),
	}
	applyAmbientOverrides(cfg)
	return cfg
}

// ChildEnv assembles the environment for child processes: the inherited
// process environment with the config-file pairs layered on top, plus the
// resolved OUTPUT_DIR. File pairs shadow inherited variables, matching shell
// source semantics. The result is sorted for deterministic output.
func (c *Config) ChildEnv() []string {
	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		merged[key] = value
	}
	for key, value := range c.Values {
		merged[key] = value
	}
	merged["OUTPUT_DIR"] = c.OutputDir

	env := make([]string, 0, len(merged))
	for key, value := range merged {
		env = append(env, key+"="+value)
	}
	sort.Strings(env)
	return env
}

// DatabaseName returns the database the analysis steps will profile.
// The default mirrors what the analysis scripts assume when DB_NAME is absent.
func (c *Config) DatabaseName() string { return c.valueOr("DB_NAME", "tenant") }

// DatabaseHost returns the configured database host.
func (c *Config) DatabaseHost() string { return c.valueOr("DB_HOST", "localhost") }

// DatabasePort returns the configured database port.
func (c *Config) DatabasePort() string { return c.valueOr("DB_PORT", "3306") }

// valueOr resolves a display value: config file first, then the process
// environment, then the given default. Empty values fall through.
func (c *Config) valueOr(key, defaultVal string) string {
	if val := c.Values[key]; val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
