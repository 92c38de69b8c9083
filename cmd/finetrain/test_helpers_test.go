package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"finetrain/internal/config"
	"finetrain/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

// setupCLITestEnv builds a config backed by temp directories, with the three
// stage binaries replaced by stub scripts and a base training config on disk.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)

	cfg.Tools.CaptionerBin = writeStub(t, base, "caption-videos", captionStubScript)
	cfg.Tools.PreprocessorBin = writeStub(t, base, "preprocess-dataset", exitZeroScript)
	cfg.Tools.TrainerBin = writeStub(t, base, "train-model", exitZeroScript)

	testsupport.WriteBaseTrainingConfig(t, cfg.Training.ConfigPath)

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

const exitZeroScript = "#!/bin/sh\nexit 0\n"

const exitThreeScript = "#!/bin/sh\nexit 3\n"

// captionStubScript writes a placeholder captions artifact to the path that
// follows --output, matching the real captioner's contract.
const captionStubScript = `#!/bin/sh
out=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "--output" ]; then
    out="$arg"
  fi
  prev="$arg"
done
if [ -n "$out" ]; then
  printf '[{"caption": "stub caption", "media_path": "clip_0001.mp4"}]' > "$out"
fi
exit 0
`

func writeStub(t *testing.T, base, name, script string) string {
	t.Helper()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cliArgs := args
	if configPath != "" {
		cliArgs = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(cliArgs)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
