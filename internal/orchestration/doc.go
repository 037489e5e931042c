// Package orchestration coordinates sequential execution of external analysis
// steps and collects the artifacts they produce. It decouples pipeline logic
// from process spawning, file movement and presentation via the Invoker,
// Relocator and StepObserver interfaces.
package orchestration
