package config

const (
	defaultOutputDirBase     = "outputs"
	defaultCaptionerBin      = "caption-videos"
	defaultPreprocessorBin   = "preprocess-dataset"
	defaultTrainerBin        = "train-model"
	defaultCaptionerType     = "llava_next_7b"
	defaultCaptionsFilename  = "captions.json"
	defaultCaptionColumn     = "caption"
	defaultVideoColumn       = "media_path"
	defaultIDToken           = "T1m3l4ps3"
	defaultResolutionBuckets = "768x768x25"
	defaultTrainingConfig    = "configs/ltxv_2b_lora.yaml"
	defaultHistoryPath       = "~/.local/share/finetrain/history.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDirBase: defaultOutputDirBase,
		},
		Tools: Tools{
			CaptionerBin:    defaultCaptionerBin,
			PreprocessorBin: defaultPreprocessorBin,
			TrainerBin:      defaultTrainerBin,
		},
		Captioning: Captioning{
			CaptionerType:    defaultCaptionerType,
			CaptionsFilename: defaultCaptionsFilename,
		},
		Preprocessing: Preprocessing{
			CaptionColumn:     defaultCaptionColumn,
			VideoColumn:       defaultVideoColumn,
			IDToken:           defaultIDToken,
			ResolutionBuckets: defaultResolutionBuckets,
		},
		Training: Training{
			ConfigPath: defaultTrainingConfig,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
