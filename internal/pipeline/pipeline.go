package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"finetrain/internal/history"
	"finetrain/internal/logging"
	"finetrain/internal/rundir"
	"finetrain/internal/services"
	"finetrain/internal/services/preprocess"
	"finetrain/internal/trainconfig"
)

// Stage names in execution order.
const (
	StageCaptioning       = "captioning"
	StagePreprocessing    = "preprocessing"
	StageConfigDerivation = "config_derivation"
	StageTraining         = "training"
)

// Captioner generates the captions artifact for a dataset.
type Captioner interface {
	Caption(ctx context.Context, datasetDir, outputPath, captionerType string) error
}

// Preprocessor turns a captions artifact into precomputed training data.
type Preprocessor interface {
	Preprocess(ctx context.Context, captionsPath string, params preprocess.Params) error
}

// Trainer launches training from a derived configuration file.
type Trainer interface {
	Train(ctx context.Context, configPath string) error
}

// Allocator produces the run's isolated output directory.
type Allocator interface {
	Allocate(base string, now time.Time) (string, error)
}

// Recorder persists run progress to the history ledger.
type Recorder interface {
	Create(ctx context.Context, run *history.Run) error
	Update(ctx context.Context, run *history.Run) error
}

// StageOutcome summarizes one executed stage for operator reporting.
type StageOutcome struct {
	Name     string
	Failed   bool
	Duration time.Duration
}

// Outcome is the final report of a pipeline run.
type Outcome struct {
	RunID             string
	CaptionsPath      string
	OutputDir         string
	DerivedConfigPath string
	Diagnostics       []string
	Stages            []StageOutcome
}

// Pipeline coordinates the fixed four-stage sequence.
type Pipeline struct {
	captioner    Captioner
	preprocessor Preprocessor
	trainer      Trainer
	allocator    Allocator
	recorder     Recorder
	logger       *slog.Logger
	clock        func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithAllocator overrides the output directory allocator.
func WithAllocator(allocator Allocator) Option {
	return func(p *Pipeline) {
		if allocator != nil {
			p.allocator = allocator
		}
	}
}

// WithRecorder enables run ledger persistence.
func WithRecorder(recorder Recorder) Option {
	return func(p *Pipeline) {
		p.recorder = recorder
	}
}

// WithClock overrides wall-clock time (tests).
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// New constructs a Pipeline from the three stage clients.
func New(captioner Captioner, preprocessor Preprocessor, trainer Trainer, opts ...Option) *Pipeline {
	p := &Pipeline{
		captioner:    captioner,
		preprocessor: preprocessor,
		trainer:      trainer,
		allocator:    rundir.New(),
		logger:       logging.NewNop(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full pipeline for one request. The first fatal error
// aborts the remaining stages.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)

	outcome := &Outcome{
		RunID:        runID,
		CaptionsPath: req.CaptionsPath(),
	}

	outputDir, err := p.allocator.Allocate(req.OutputDirBase, p.clock())
	if err != nil {
		return nil, err
	}
	outcome.OutputDir = outputDir
	logger.Info("run directory allocated",
		logging.String("output_dir", outputDir),
		logging.String("captions_path", outcome.CaptionsPath),
	)

	record := &history.Run{
		ID:           runID,
		DatasetDir:   req.DatasetDir,
		OutputDir:    outputDir,
		CaptionsPath: outcome.CaptionsPath,
		Status:       history.StatusRunning,
	}
	p.record(logger, func(r Recorder) error { return r.Create(ctx, record) })

	err = p.runStage(ctx, logger, record, outcome, StageCaptioning, func(stageCtx context.Context) error {
		return p.captioner.Caption(stageCtx, req.DatasetDir, outcome.CaptionsPath, req.CaptionerType)
	})
	if err != nil {
		return outcome, err
	}

	err = p.runStage(ctx, logger, record, outcome, StagePreprocessing, func(stageCtx context.Context) error {
		return p.preprocessor.Preprocess(stageCtx, outcome.CaptionsPath, preprocess.Params{
			CaptionColumn:     req.CaptionColumn,
			VideoColumn:       req.VideoColumn,
			IDToken:           req.IDToken,
			ResolutionBuckets: req.ResolutionBuckets,
		})
	})
	if err != nil {
		return outcome, err
	}

	err = p.runStage(ctx, logger, record, outcome, StageConfigDerivation, func(stageCtx context.Context) error {
		derivation, deriveErr := trainconfig.Derive(req.BaseConfigPath, trainconfig.Request{
			DatasetDir:           req.DatasetDir,
			IDToken:              req.IDToken,
			ResolutionBuckets:    req.ResolutionBuckets,
			PreprocessedDataRoot: req.PreprocessedDataRoot,
			VideoDims:            req.VideoDims,
		}, outputDir)
		if deriveErr != nil {
			return deriveErr
		}
		outcome.DerivedConfigPath = derivation.Path
		outcome.Diagnostics = append(outcome.Diagnostics, derivation.Diagnostics...)
		for _, diagnostic := range derivation.Diagnostics {
			logging.WithContext(stageCtx, p.logger).Warn("derivation diagnostic",
				logging.String("detail", diagnostic),
			)
		}
		record.ConfigPath = derivation.Path
		return nil
	})
	if err != nil {
		return outcome, err
	}

	err = p.runStage(ctx, logger, record, outcome, StageTraining, func(stageCtx context.Context) error {
		return p.trainer.Train(stageCtx, outcome.DerivedConfigPath)
	})
	if err != nil {
		return outcome, err
	}

	record.Status = history.StatusCompleted
	p.record(logger, func(r Recorder) error { return r.Update(ctx, record) })

	logger.Info("pipeline completed",
		logging.String("derived_config", outcome.DerivedConfigPath),
		logging.String("output_dir", outputDir),
	)
	return outcome, nil
}

// runStage executes one stage with logging and ledger transitions. Any error
// marks the run failed and halts the sequence.
func (p *Pipeline) runStage(ctx context.Context, logger *slog.Logger, record *history.Run, outcome *Outcome, name string, fn func(context.Context) error) error {
	stageCtx := services.WithStage(ctx, name)
	stageLogger := logging.WithContext(stageCtx, p.logger)

	record.Stage = name
	p.record(logger, func(r Recorder) error { return r.Update(ctx, record) })

	stageLogger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))
	start := time.Now()
	err := fn(stageCtx)
	duration := time.Since(start)

	outcome.Stages = append(outcome.Stages, StageOutcome{Name: name, Failed: err != nil, Duration: duration})

	if err != nil {
		stageLogger.Error("stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.Duration("duration", duration),
			logging.Error(err),
		)
		record.Status = history.StatusFailed
		record.ErrorMessage = err.Error()
		p.record(logger, func(r Recorder) error { return r.Update(ctx, record) })
		return err
	}

	stageLogger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("duration", duration),
	)
	return nil
}

// record applies a ledger operation, degrading failures to warnings: the
// ledger never decides whether the pipeline continues.
func (p *Pipeline) record(logger *slog.Logger, fn func(Recorder) error) {
	if p.recorder == nil {
		return
	}
	if err := fn(p.recorder); err != nil {
		logger.Warn("history ledger write failed", logging.Error(err))
	}
}
