package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finetrain/internal/services"
)

// Request is the immutable input to one pipeline invocation.
type Request struct {
	DatasetDir        string
	CaptionerType     string
	CaptionColumn     string
	VideoColumn       string
	IDToken           string
	ResolutionBuckets string
	BaseConfigPath    string
	OutputDirBase     string

	// Optional overrides.
	CaptionsOutput       string
	PreprocessedDataRoot string
	VideoDims            string
}

// Validate checks the invariants that must hold before stage 1 begins.
func (r Request) Validate() error {
	dataset := strings.TrimSpace(r.DatasetDir)
	if dataset == "" {
		return services.Wrap(services.ErrValidation, "request", "dataset", "dataset directory required", nil)
	}
	info, err := os.Stat(dataset)
	if err != nil {
		return services.Wrap(services.ErrValidation, "request", "dataset", fmt.Sprintf("dataset directory %s not accessible", dataset), err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrValidation, "request", "dataset", fmt.Sprintf("%s is not a directory", dataset), nil)
	}
	handle, err := os.Open(dataset)
	if err != nil {
		return services.Wrap(services.ErrValidation, "request", "dataset", fmt.Sprintf("dataset directory %s not readable", dataset), err)
	}
	_ = handle.Close()

	if strings.TrimSpace(r.BaseConfigPath) == "" {
		return services.Wrap(services.ErrValidation, "request", "config", "base training config path required", nil)
	}
	if strings.TrimSpace(r.OutputDirBase) == "" {
		return services.Wrap(services.ErrValidation, "request", "output", "output base directory required", nil)
	}
	return nil
}

// CaptionsPath resolves the captions artifact location: the explicit override
// when given, else captions.json inside the dataset directory.
func (r Request) CaptionsPath() string {
	if path := strings.TrimSpace(r.CaptionsOutput); path != "" {
		return path
	}
	return filepath.Join(r.DatasetDir, "captions.json")
}
