package metrics

import (
	"bytes"
	"runtime"
	"time"

	"github.com/dataops/profilerun/internal/orchestration"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Compile-time check: run metrics attach to the pipeline as an observer.
var _ orchestration.StepObserver = (*RunMetrics)(nil)

// RunMetrics collects one run's worth of pipeline metrics on a private
// registry and renders them in the Prometheus text exposition format, ready
// to drop into the output directory for a node-exporter textfile collector.
type RunMetrics struct {
	registry *prometheus.Registry

	runInfo     *prometheus.GaugeVec
	runSuccess  prometheus.Gauge
	runDuration prometheus.Gauge

	stepDuration  *prometheus.GaugeVec
	stepExitCode  *prometheus.GaugeVec
	artifactMoved *prometheus.GaugeVec

	heapAlloc prometheus.Gauge
	sysBytes  prometheus.Gauge
	gcCycles  prometheus.Gauge
}

// NewRunMetrics creates a registry scoped to a single run. runID and version
// are exposed as labels on the info gauge rather than on every series, so the
// textfile stays stable across runs.
func NewRunMetrics(runID, version string) *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		runInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "profilerun_run_info",
			Help: "Constant gauge carrying run identity labels.",
		}, []string{"run_id", "version"}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profilerun_run_success",
			Help: "1 when every analysis step exited zero, 0 otherwise.",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profilerun_run_duration_seconds",
			Help: "Wall-clock duration of the whole run.",
		}),
		stepDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "profilerun_step_duration_seconds",
			Help: "Wall-clock duration of each analysis step.",
		}, []string{"step"}),
		stepExitCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "profilerun_step_exit_code",
			Help: "Exit status of each analysis step; -1 means it never started.",
		}, []string{"step"}),
		artifactMoved: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "profilerun_step_artifact_moved",
			Help: "1 when the step's artifact landed in the output directory.",
		}, []string{"step"}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profilerun_heap_alloc_bytes",
			Help: "Heap bytes in use by the orchestrator at the end of the run.",
		}),
		sysBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profilerun_sys_bytes",
			Help: "Total bytes the orchestrator obtained from the OS.",
		}),
		gcCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profilerun_gc_cycles_total",
			Help: "Completed GC cycles in the orchestrator process.",
		}),
	}
	m.registry.MustRegister(
		m.runInfo, m.runSuccess, m.runDuration,
		m.stepDuration, m.stepExitCode, m.artifactMoved,
		m.heapAlloc, m.sysBytes, m.gcCycles,
	)
	m.runInfo.WithLabelValues(runID, version).Set(1)
	return m
}

// StepStarted implements orchestration.StepObserver.
func (m *RunMetrics) StepStarted(orchestration.ExternalStep, int, int) {}

// StepSucceeded implements orchestration.StepObserver.
func (m *RunMetrics) StepSucceeded(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	m.stepDuration.WithLabelValues(step.Name).Set(result.Duration.Seconds())
	m.stepExitCode.WithLabelValues(step.Name).Set(0)
}

// StepFailed implements orchestration.StepObserver.
func (m *RunMetrics) StepFailed(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	m.stepDuration.WithLabelValues(step.Name).Set(result.Duration.Seconds())
	m.stepExitCode.WithLabelValues(step.Name).Set(float64(result.ExitCode))
}

// ArtifactMoved implements orchestration.StepObserver.
func (m *RunMetrics) ArtifactMoved(step orchestration.ExternalStep, _ string) {
	m.artifactMoved.WithLabelValues(step.Name).Set(1)
}

// ArtifactMissing implements orchestration.StepObserver.
func (m *RunMetrics) ArtifactMissing(step orchestration.ExternalStep) {
	m.artifactMoved.WithLabelValues(step.Name).Set(0)
}

// ArtifactMoveFailed implements orchestration.StepObserver.
func (m *RunMetrics) ArtifactMoveFailed(step orchestration.ExternalStep, _ error) {
	m.artifactMoved.WithLabelValues(step.Name).Set(0)
}

// RecordOutcome finalizes the run-level gauges and snapshots the process's
// memory statistics.
func (m *RunMetrics) RecordOutcome(success bool, elapsed time.Duration) {
	if success {
		m.runSuccess.Set(1)
	} else {
		m.runSuccess.Set(0)
	}
	m.runDuration.Set(elapsed.Seconds())

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	m.heapAlloc.Set(float64(stats.HeapAlloc))
	m.sysBytes.Set(float64(stats.Sys))
	m.gcCycles.Set(float64(stats.NumGC))
}

// Render serializes every collected family in the text exposition format.
func (m *RunMetrics) Render() ([]byte, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
