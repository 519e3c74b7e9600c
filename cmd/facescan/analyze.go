package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/facescan/internal/config"
	"github.com/nao1215/facescan/internal/faceapi"
	"github.com/nao1215/facescan/internal/log"
	"github.com/nao1215/facescan/internal/model"
	"github.com/nao1215/facescan/internal/pipeline"
	"github.com/nao1215/facescan/internal/render"
)

// runAnalyzeCmd executes the default analysis.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), verbose)

	cfg := buildConfig(logger, verbose)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return runAnalyze(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the environment and the verbose flag.
func buildConfig(logger *slog.Logger, verbose bool) *config.Config {
	cfg := config.NewConfig()
	cfg.Credentials = config.LoadCredentials(logger, config.DefaultEnvFiles()...)
	cfg.Verbose = verbose
	return cfg
}

// runAnalyze analyses cfg.InputPath once, printing results to out.
func runAnalyze(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	client := faceapi.NewClient(cfg.Credentials,
		faceapi.WithLogger(logger),
		faceapi.WithDetectionModel(cfg.DetectionModel),
		faceapi.WithRecognitionModel(cfg.RecognitionModel),
		faceapi.WithAPIVersion(cfg.APIVersion),
	)
	renderer := render.NewRenderer(
		render.WithOutput(out),
		render.WithLogger(logger),
	)
	p := pipeline.DefaultPipeline(client, renderer, pipeline.WithLogger(logger))

	logger.Debug("starting analysis",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"service", cfg.Credentials,
		"detection_model", cfg.DetectionModel,
		"recognition_model", cfg.RecognitionModel,
		"steps", p.StepNames(),
	)

	analysis := model.NewAnalysis(cfg.InputPath, cfg.OutputPath)
	if err := p.Execute(ctx, analysis); err != nil {
		var remoteErr *faceapi.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.IsUnauthorized() {
			return fmt.Errorf("analysis of %s failed: %w (check %s and %s)",
				cfg.InputPath, err, config.EnvServiceKey, config.EnvServiceEndpoint)
		}
		return fmt.Errorf("analysis of %s failed: %w", cfg.InputPath, err)
	}

	logger.Debug("analysis finished",
		"faces", analysis.FaceCount(),
		"saved", analysis.SavedPath,
		"steps", analysis.PerformedSteps,
	)
	return nil
}
