package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// BaseTrainingConfigYAML is a minimal base training config with the sections
// derivation requires.
const BaseTrainingConfigYAML = `model:
  name: ltxv_2b
data:
  preprocessed_data_root: /placeholder
validation:
  video_dims: [768, 768, 89]
output_dir: /placeholder
`

// WriteBaseTrainingConfig writes the fixture base config to path.
func WriteBaseTrainingConfig(t testing.TB, path string) {
	t.Helper()
	WriteTextFile(t, path, BaseTrainingConfigYAML)
}

// WriteTextFile writes content to path, creating parent directories.
func WriteTextFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NewDataset creates a dataset directory containing a placeholder video file.
func NewDataset(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "videos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir dataset: %v", err)
	}
	WriteTextFile(t, filepath.Join(dir, "clip_0001.mp4"), "not a real video")
	return dir
}
