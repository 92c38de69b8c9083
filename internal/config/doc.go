// Package config loads, normalizes, and validates finetrain configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: external tool binaries, captioning and preprocessing
// defaults, the base training config location, the run history database, and
// logging output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
