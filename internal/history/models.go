package history

import "time"

// Status represents the lifecycle of a recorded run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one pipeline invocation as recorded in the ledger.
type Run struct {
	ID           string
	DatasetDir   string
	OutputDir    string
	CaptionsPath string
	ConfigPath   string
	Status       Status
	Stage        string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
