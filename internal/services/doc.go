// Package services defines the shared error taxonomy and context plumbing
// used by the pipeline stages and external tool clients.
//
// Errors are tagged with sentinel markers (ErrExternalTool, ErrValidation,
// ErrConfiguration, ErrIO) so callers can classify failures with errors.Is
// without string matching. Context helpers carry the current stage name and
// run identifier so loggers can tag every line with pipeline coordinates.
package services
