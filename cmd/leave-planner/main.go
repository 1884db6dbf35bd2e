package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/config"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leave-planner",
		Short:         "Yearly leave planner",
		Long:          "Suggest leave days that bridge weekends and public holidays into long breaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else if err == nil {
				initLogger(cfg.Log.Level)
			} else {
				initLogger("info")
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ./config.yaml if present)")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(holidaysCmd())

	return rootCmd
}

// buildSource picks the holiday source named by the config
func buildSource(cfg *config.Config) (calendar.Source, error) {
	var source calendar.Source

	switch cfg.Holidays.Source {
	case config.SourceBuiltin, "":
		return calendar.NewBuiltinSource(), nil
	case config.SourceFile:
		source = calendar.NewFileSource(cfg.Holidays.Path, logger)
	case config.SourceURL:
		source = calendar.NewURLSource(cfg.Holidays.URL, cfg.Holidays.GetTimeout(), logger)
	default:
		return nil, fmt.Errorf("unknown holiday source: %s", cfg.Holidays.Source)
	}

	if cfg.Holidays.FallbackBuiltin {
		return calendar.NewCompositeSource(source, calendar.NewBuiltinSource(), logger), nil
	}
	return source, nil
}

// loadPlanner loads the config and the holiday table and builds the planner
func loadPlanner(ctx context.Context) (*config.Config, *planner.Planner, calendar.HolidayTable, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	source, err := buildSource(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	table, err := source.Load(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load holidays from %s: %w", source.Name(), err)
	}

	holidays := table.Dates()
	logger.Info("Holiday table loaded",
		zap.String("source", source.Name()),
		zap.Int("holidays", len(table)),
		zap.Int("days", holidays.Len()))

	if holidays.Len() > 0 && holidays.InYear(cfg.Planner.Year).Len() == 0 {
		logger.Warn("No holidays fall in the planning year",
			zap.Int("year", cfg.Planner.Year))
	}

	if today := dateutil.Today(); cfg.Planner.Year < today.Year() {
		logger.Warn("Planning year is already over",
			zap.Int("year", cfg.Planner.Year),
			zap.Stringer("today", today))
	}

	return cfg, planner.NewPlanner(cfg.Planner.Year, holidays, logger), table, nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
