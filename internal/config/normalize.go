package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeStageDefaults()
	c.normalizeLogging()
	return nil
}

// normalizePaths expands tilde shortcuts. OutputDirBase is deliberately left
// as written so relative bases such as "outputs" resolve against the
// invocation directory.
func (c *Config) normalizePaths() error {
	c.Paths.OutputDirBase = strings.TrimSpace(c.Paths.OutputDirBase)
	if c.Paths.OutputDirBase == "" {
		c.Paths.OutputDirBase = defaultOutputDirBase
	}

	var err error
	if dir := strings.TrimSpace(c.Paths.LogDir); dir != "" {
		if c.Paths.LogDir, err = expandPath(dir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	} else {
		c.Paths.LogDir = ""
	}

	if c.History.Path = strings.TrimSpace(c.History.Path); c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	if c.Tools.CaptionerBin = strings.TrimSpace(c.Tools.CaptionerBin); c.Tools.CaptionerBin == "" {
		c.Tools.CaptionerBin = defaultCaptionerBin
	}
	if c.Tools.PreprocessorBin = strings.TrimSpace(c.Tools.PreprocessorBin); c.Tools.PreprocessorBin == "" {
		c.Tools.PreprocessorBin = defaultPreprocessorBin
	}
	if c.Tools.TrainerBin = strings.TrimSpace(c.Tools.TrainerBin); c.Tools.TrainerBin == "" {
		c.Tools.TrainerBin = defaultTrainerBin
	}
}

func (c *Config) normalizeStageDefaults() {
	if c.Captioning.CaptionerType = strings.TrimSpace(c.Captioning.CaptionerType); c.Captioning.CaptionerType == "" {
		c.Captioning.CaptionerType = defaultCaptionerType
	}
	if c.Captioning.CaptionsFilename = strings.TrimSpace(c.Captioning.CaptionsFilename); c.Captioning.CaptionsFilename == "" {
		c.Captioning.CaptionsFilename = defaultCaptionsFilename
	}
	if c.Preprocessing.CaptionColumn = strings.TrimSpace(c.Preprocessing.CaptionColumn); c.Preprocessing.CaptionColumn == "" {
		c.Preprocessing.CaptionColumn = defaultCaptionColumn
	}
	if c.Preprocessing.VideoColumn = strings.TrimSpace(c.Preprocessing.VideoColumn); c.Preprocessing.VideoColumn == "" {
		c.Preprocessing.VideoColumn = defaultVideoColumn
	}
	if c.Preprocessing.IDToken = strings.TrimSpace(c.Preprocessing.IDToken); c.Preprocessing.IDToken == "" {
		c.Preprocessing.IDToken = defaultIDToken
	}
	if c.Preprocessing.ResolutionBuckets = strings.TrimSpace(c.Preprocessing.ResolutionBuckets); c.Preprocessing.ResolutionBuckets == "" {
		c.Preprocessing.ResolutionBuckets = defaultResolutionBuckets
	}
	if c.Training.ConfigPath = strings.TrimSpace(c.Training.ConfigPath); c.Training.ConfigPath == "" {
		c.Training.ConfigPath = defaultTrainingConfig
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
