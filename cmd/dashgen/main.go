package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dashgen/internal/config"
	"dashgen/internal/llm"
	"dashgen/internal/pipeline"
	"dashgen/internal/server"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dashgen",
	Short: "dashgen - markdown to dashboard component generator",
	Long: `dashgen turns markdown documents into streams of typed dashboard
components. An LLM analyzes the document, picks a layout strategy, and
selects components; dashgen normalizes, validates, and places them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = buildLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err == nil {
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	return zc.Build()
}

func buildPipeline() (*pipeline.Pipeline, error) {
	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLMTimeout(),
	})
	if err != nil {
		return nil, err
	}
	return pipeline.New(client, pipeline.Config{
		StageTimeout: cfg.StageTimeout(),
		EmitBuffer:   cfg.Pipeline.EmitBuffer,
		VarietyRetry: cfg.Pipeline.VarietyRetry,
		MaxTokens:    cfg.Pipeline.MaxTokens,
	}, logger), nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP generation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipe, err := buildPipeline()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, pipe, logger).Run(ctx)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate dashboard components from a markdown file, one NDJSON event per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var source []byte
		var err error
		if len(args) == 1 && args[0] != "-" {
			source, err = os.ReadFile(args[0])
		} else {
			source, err = readStdin()
		}
		if err != nil {
			return err
		}

		pipe, err := buildPipeline()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		enc := json.NewEncoder(os.Stdout)
		failed := ""
		for ev := range pipe.Run(ctx, source) {
			if err := enc.Encode(ev); err != nil {
				return err
			}
			if ev.Type == pipeline.EventError {
				failed = ev.Message
			}
		}
		if failed != "" {
			return fmt.Errorf("generation failed: %s", failed)
		}
		return nil
	},
}

func readStdin() ([]byte, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("no input file and nothing on stdin")
	}
	return io.ReadAll(os.Stdin)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "dashgen.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, generateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
