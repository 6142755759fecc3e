// Package report owns the run's anomaly accumulators and the final
// human-readable summary.
//
// Recorder is injected into the resolver and the download manager and
// is safe for concurrent appends; Summary is built once, after all
// download tasks have joined.
package report
