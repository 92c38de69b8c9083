package trainconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"finetrain/internal/services"
)

// Request carries the inputs that shape one derivation.
type Request struct {
	DatasetDir        string
	IDToken           string
	ResolutionBuckets string

	// Optional overrides.
	PreprocessedDataRoot string
	VideoDims            string
}

// Derivation is the result of deriving a run configuration.
type Derivation struct {
	Config Document
	Path   string
	// Diagnostics records non-fatal derivation issues, currently only the
	// resolution-buckets fallback failing to parse as dimensions.
	Diagnostics []string
}

// Derive loads the base config and produces the run-specific document plus
// its on-disk location inside outputDir. The base file is only read.
//
// The validation.video_dims resolution is tiered: an explicit override must
// parse or the derivation fails; the resolution-buckets fallback is
// best-effort and leaves the base value untouched when it is not a WxHxF
// string.
func Derive(baseConfigPath string, req Request, outputDir string) (*Derivation, error) {
	base, err := Load(baseConfigPath)
	if err != nil {
		return nil, err
	}

	doc := base.Clone()
	data, _ := doc.Section("data")
	validation, _ := doc.Section("validation")

	root := strings.TrimSpace(req.PreprocessedDataRoot)
	if root == "" {
		root = filepath.Join(req.DatasetDir, ".precomputed")
	}
	data["preprocessed_data_root"] = root

	doc["output_dir"] = outputDir

	var diagnostics []string
	if dims := strings.TrimSpace(req.VideoDims); dims != "" {
		spec, err := ParseResolution(dims)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "derive", "video_dims", "parse explicit override", err)
		}
		validation["video_dims"] = spec.Dims()
	} else if spec, err := ParseResolution(req.ResolutionBuckets); err == nil {
		validation["video_dims"] = spec.Dims()
	} else {
		// Resolution buckets are usually but not always WxHxF; keep the base
		// config's existing value and record the miss.
		diagnostics = append(diagnostics, fmt.Sprintf("resolution buckets unusable as video_dims: %v", err))
	}

	data["training_token"] = req.IDToken

	path := derivedPath(baseConfigPath, outputDir)
	if err := doc.Write(path); err != nil {
		return nil, err
	}

	return &Derivation{Config: doc, Path: path, Diagnostics: diagnostics}, nil
}

// derivedPath keeps the base file's name with an _updated suffix so the
// artifact is recognizable next to the run outputs.
func derivedPath(baseConfigPath, outputDir string) string {
	name := filepath.Base(baseConfigPath)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if ext == "" {
		ext = ".yaml"
	}
	return filepath.Join(outputDir, stem+"_updated"+ext)
}
