package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"finetrain/internal/pipeline"
	"finetrain/internal/preflight"
	"finetrain/internal/services/captioner"
	"finetrain/internal/services/preprocess"
	"finetrain/internal/services/trainer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDirBase        string
		captionsOutput       string
		captionerType        string
		captionColumn        string
		videoColumn          string
		idToken              string
		resolutionBuckets    string
		configPath           string
		preprocessedDataRoot string
		videoDims            string
	)

	cmd := &cobra.Command{
		Use:   "run <dataset-dir>",
		Short: "Caption, preprocess, derive a config, and launch training",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			datasetDir := args[0]
			flags := cmd.Flags()
			pick := func(name, flagValue, cfgValue string) string {
				if flags.Changed(name) {
					return flagValue
				}
				return cfgValue
			}

			req := pipeline.Request{
				DatasetDir:           datasetDir,
				CaptionerType:        pick("captioner-type", captionerType, cfg.Captioning.CaptionerType),
				CaptionColumn:        pick("caption-column", captionColumn, cfg.Preprocessing.CaptionColumn),
				VideoColumn:          pick("video-column", videoColumn, cfg.Preprocessing.VideoColumn),
				IDToken:              pick("id-token", idToken, cfg.Preprocessing.IDToken),
				ResolutionBuckets:    pick("resolution-buckets", resolutionBuckets, cfg.Preprocessing.ResolutionBuckets),
				BaseConfigPath:       pick("config-path", configPath, cfg.Training.ConfigPath),
				OutputDirBase:        pick("output-dir-base", outputDirBase, cfg.Paths.OutputDirBase),
				PreprocessedDataRoot: preprocessedDataRoot,
				VideoDims:            videoDims,
			}
			if flags.Changed("captions-output") {
				req.CaptionsOutput = captionsOutput
			} else {
				req.CaptionsOutput = filepath.Join(datasetDir, cfg.Captioning.CaptionsFilename)
			}

			checkCfg := *cfg
			checkCfg.Paths.OutputDirBase = req.OutputDirBase
			checkCfg.Training.ConfigPath = req.BaseConfigPath
			checks := preflight.RunAll(cmd.Context(), &checkCfg)
			if failed := preflight.Failed(checks); len(failed) > 0 {
				for _, check := range checks {
					if !check.Passed {
						fmt.Fprintf(cmd.ErrOrStderr(), "Preflight: %s: %s\n", check.Name, check.Detail)
					}
				}
				return fmt.Errorf("preflight checks failed: %s", strings.Join(failed, ", "))
			}

			captionClient, err := captioner.New(cfg.Tools.CaptionerBin, logger)
			if err != nil {
				return err
			}
			preprocessClient, err := preprocess.New(cfg.Tools.PreprocessorBin, logger)
			if err != nil {
				return err
			}
			trainClient, err := trainer.New(cfg.Tools.TrainerBin, logger)
			if err != nil {
				return err
			}

			opts := []pipeline.Option{pipeline.WithLogger(logger)}
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			if store != nil {
				defer func() { _ = store.Close() }()
				opts = append(opts, pipeline.WithRecorder(store))
			}

			runner := pipeline.New(captionClient, preprocessClient, trainClient, opts...)
			outcome, runErr := runner.Run(cmd.Context(), req)

			out := cmd.OutOrStdout()
			if outcome != nil && len(outcome.Stages) > 0 {
				fmt.Fprintln(out, renderStageSummary(outcome))
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(out, "Derived config: %s\n", outcome.DerivedConfigPath)
			fmt.Fprintf(out, "Training output: %s\n", outcome.OutputDir)
			for _, diagnostic := range outcome.Diagnostics {
				fmt.Fprintf(out, "Note: %s\n", diagnostic)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDirBase, "output-dir-base", "outputs", "Base directory for training outputs")
	cmd.Flags().StringVar(&captionsOutput, "captions-output", "", "File path for the captions artifact (default <dataset-dir>/captions.json)")
	cmd.Flags().StringVar(&captionerType, "captioner-type", "llava_next_7b", "Captioning model type")
	cmd.Flags().StringVar(&captionColumn, "caption-column", "caption", "Caption column name")
	cmd.Flags().StringVar(&videoColumn, "video-column", "media_path", "Video path column name")
	cmd.Flags().StringVar(&idToken, "id-token", "T1m3l4ps3", "Training token embedded in the derived config")
	cmd.Flags().StringVar(&resolutionBuckets, "resolution-buckets", "768x768x25", "Resolution buckets in WxHxF format")
	cmd.Flags().StringVar(&configPath, "config-path", "configs/ltxv_2b_lora.yaml", "Base training config path")
	cmd.Flags().StringVar(&preprocessedDataRoot, "preprocessed-data-root", "", "Override for data.preprocessed_data_root")
	cmd.Flags().StringVar(&videoDims, "video-dims", "", "Override for validation.video_dims in WxHxF format")

	return cmd
}

func renderStageSummary(outcome *pipeline.Outcome) string {
	rows := make([][]string, 0, len(outcome.Stages))
	for _, stage := range outcome.Stages {
		status := "completed"
		if stage.Failed {
			status = "failed"
		}
		rows = append(rows, []string{
			strings.ReplaceAll(stage.Name, "_", " "),
			status,
			stage.Duration.Round(time.Millisecond).String(),
		})
	}
	return renderTable([]string{"Stage", "Status", "Duration"}, rows, 2)
}
