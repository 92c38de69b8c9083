package trainconfig_test

import (
	"testing"

	"finetrain/internal/trainconfig"
)

func TestParseResolutionWellFormed(t *testing.T) {
	spec, err := trainconfig.ParseResolution("512x288x49")
	if err != nil {
		t.Fatalf("ParseResolution returned error: %v", err)
	}
	if spec.Width != 512 || spec.Height != 288 || spec.Frames != 49 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	if got := spec.Dims(); len(got) != 3 || got[0] != 512 || got[1] != 288 || got[2] != 49 {
		t.Fatalf("unexpected dims: %v", got)
	}
	if spec.String() != "512x288x49" {
		t.Fatalf("unexpected string form: %q", spec.String())
	}
}

func TestParseResolutionTrimsWhitespace(t *testing.T) {
	spec, err := trainconfig.ParseResolution("  768x768x25 ")
	if err != nil {
		t.Fatalf("ParseResolution returned error: %v", err)
	}
	if spec.Width != 768 || spec.Frames != 25 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
}

func TestParseResolutionRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"768",
		"768x768",
		"768x768x25x1",
		"768xABCx25",
		"768x-768x25",
		"0x768x25",
		"768x768x",
	}
	for _, input := range cases {
		if _, err := trainconfig.ParseResolution(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
