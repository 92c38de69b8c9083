package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"finetrain/internal/config"
)

// Requirement defines an external binary the pipeline launches.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements builds the stage binary requirements from the configuration.
func Requirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		return nil
	}
	return []Requirement{
		{
			Name:        "Captioner",
			Command:     cfg.Tools.CaptionerBin,
			Description: "Generates captions for dataset videos",
		},
		{
			Name:        "Preprocessor",
			Command:     cfg.Tools.PreprocessorBin,
			Description: "Precomputes latents and embeddings from captions",
		},
		{
			Name:        "Trainer",
			Command:     cfg.Tools.TrainerBin,
			Description: "Launches the fine-tuning job",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Commands containing a path separator are checked directly; bare names are
// resolved through PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
