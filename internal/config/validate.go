package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateStages(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.CaptionerBin == "" {
		return errors.New("tools.captioner_bin must be set")
	}
	if c.Tools.PreprocessorBin == "" {
		return errors.New("tools.preprocessor_bin must be set")
	}
	if c.Tools.TrainerBin == "" {
		return errors.New("tools.trainer_bin must be set")
	}
	return nil
}

func (c *Config) validateStages() error {
	if c.Preprocessing.CaptionColumn == "" {
		return errors.New("preprocessing.caption_column must be set")
	}
	if c.Preprocessing.VideoColumn == "" {
		return errors.New("preprocessing.video_column must be set")
	}
	if c.Training.ConfigPath == "" {
		return errors.New("training.config_path must be set")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
