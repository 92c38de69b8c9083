// Package preprocess wraps the external dataset preprocessing tool, which
// turns a captions artifact into the precomputed tensors the trainer
// consumes.
package preprocess
