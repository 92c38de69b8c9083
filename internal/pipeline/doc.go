// Package pipeline sequences the four-stage fine-tuning workflow: caption
// generation, dataset preprocessing, training-config derivation, and the
// training launch.
//
// Stages run strictly in order; each stage's output is the next stage's
// required input, and the first failure aborts the run. Nothing is retried
// and nothing runs concurrently. The orchestrator owns path resolution
// (captions artifact, isolated output directory, derived config location)
// and failure propagation; the heavy lifting happens in the external tools.
package pipeline
