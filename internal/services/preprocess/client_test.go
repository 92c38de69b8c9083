package preprocess_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"finetrain/internal/logging"
	"finetrain/internal/services"
	"finetrain/internal/services/preprocess"
	"finetrain/internal/toolexec"
)

type fakeExecutor struct {
	binary string
	args   []string
	result toolexec.Result
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) toolexec.Result {
	f.binary = binary
	f.args = args
	return f.result
}

func TestPreprocessBuildsCommandLine(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := preprocess.New("preprocess-dataset", logging.NewNop(), preprocess.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	params := preprocess.Params{
		CaptionColumn:     "caption",
		VideoColumn:       "media_path",
		IDToken:           "T1m3l4ps3",
		ResolutionBuckets: "768x768x25",
	}
	if err := client.Preprocess(context.Background(), "videos/captions.json", params); err != nil {
		t.Fatalf("Preprocess returned error: %v", err)
	}

	want := []string{
		"videos/captions.json",
		"--caption-column", "caption",
		"--video-column", "media_path",
		"--id-token", "T1m3l4ps3",
		"--resolution-buckets", "768x768x25",
	}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args:\ngot  %v\nwant %v", exec.args, want)
	}
}

func TestPreprocessToolFailure(t *testing.T) {
	exec := &fakeExecutor{result: toolexec.Result{ExitCode: 1}}
	client, err := preprocess.New("preprocess-dataset", logging.NewNop(), preprocess.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = client.Preprocess(context.Background(), "captions.json", preprocess.Params{})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestPreprocessRequiresCaptionsPath(t *testing.T) {
	client, err := preprocess.New("preprocess-dataset", logging.NewNop(), preprocess.WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = client.Preprocess(context.Background(), "", preprocess.Params{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}
