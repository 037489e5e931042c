// Package metrics records per-run pipeline metrics on a private Prometheus
// registry and renders them as a textfile for collection alongside the
// analysis artifacts. It listens to the pipeline through the StepObserver
// seam, so orchestration never depends on it.
package metrics
