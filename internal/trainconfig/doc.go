// Package trainconfig derives per-run training configurations.
//
// A base YAML document is loaded read-only, copied, mutated in four fixed
// locations (preprocessed data root, output directory, validation video
// dimensions, training token), and serialized into the run's output
// directory. The base file is never written; every run hands the trainer a
// complete, self-contained derived document.
package trainconfig
