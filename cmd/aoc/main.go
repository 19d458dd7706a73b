package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/aoc2023/internal/config"
	"svw.info/aoc2023/internal/infrastructure/storage"
	"svw.info/aoc2023/internal/ports"
	"svw.info/aoc2023/internal/usecase"
	"svw.info/aoc2023/internal/validator"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	uc     *usecase.Service
	book   *validator.Book

	// flags
	inputDir    string
	answersPath string
	logLevel    string
	timeout     time.Duration
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solvers, days 1-9",
		Long: `aoc solves Advent of Code 2023 puzzles from input files.

Inputs are read from the input directory: dayN.txt for the real input and
test_dayN.txt for the published sample. Answers go to stdout, logs to stderr.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.inputDir, "input-dir", "", "input directory (env AOC_INPUT_DIR, default data)")
	pf.StringVar(&a.answersPath, "answers", "", "YAML answer book for check (env AOC_ANSWERS)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (env AOC_LOG_LEVEL)")
	pf.DurationVar(&a.timeout, "timeout", 0, "overall timeout (env AOC_TIMEOUT, default 30s)")

	root.AddCommand(a.solveCmd(), a.allCmd(), a.checkCmd(), a.recordCmd(), a.listCmd())
	return root
}

// setup merges env config with flags, then wires logger and service.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if flags.Changed("answers") {
		cfg.AnswersPath = a.answersPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var v ports.Validator
	if cfg.AnswersPath != "" {
		b, err := validator.Load(cfg.AnswersPath)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		a.book, v = b, b
	}
	a.uc = usecase.NewService(storage.NewFS(cfg.InputDir), v, a.logger, solvers()...)
	a.logger.Debug("configured",
		zap.String("input_dir", cfg.InputDir),
		zap.String("answers", cfg.AnswersPath),
		zap.Duration("timeout", cfg.Timeout),
	)
	return nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
