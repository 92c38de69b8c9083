package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExternalTool marks failures of the captioning, preprocessing, or
	// training binaries (abnormal termination, missing executable).
	ErrExternalTool = errors.New("external tool error")
	// ErrValidation marks malformed user input such as an unparsable
	// dimension string or a missing dataset directory.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration documents, including a
	// base training config with missing required sections.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO marks filesystem failures: directory allocation, artifact writes.
	ErrIO = errors.New("io error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
