package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"finetrain/internal/trainconfig"
)

// CheckOutputBase verifies the training output base directory is usable,
// creating it when absent. The allocator would create it anyway; doing it
// here surfaces permission problems before any stage runs.
func CheckOutputBase(path string) Result {
	const name = "Output directory"

	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckTrainingConfig verifies the base training config exists and carries
// the sections derivation rewrites.
func CheckTrainingConfig(path string) Result {
	const name = "Training config"

	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if _, err := trainconfig.Load(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}
