package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"github.com/HailieNashData/dsci510-fall2025-final-project/adapters"
	"github.com/HailieNashData/dsci510-fall2025-final-project/sink"
)

var (
	cfgPath   string
	outputDir string
	format    string
	seasons   []int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "f1data",
	Short: "Collect F1 telemetry and results data",
	Long: `f1data retrieves session telemetry from the OpenF1 API and historical
results from the Ergast API, flattens the responses into tabular records, and
persists them for downstream analysis.`,
	SilenceUsage: true,
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch and persist season data from OpenF1 and Ergast",
	Long: `Runs the full collection sequence for each configured season: race
results, qualifying results, and driver standings from Ergast, then sessions
from OpenF1 with lap and pit stop telemetry sampled from the first race
sessions. Defaults collect seasons 2023 and 2024 into data/ as CSV.`,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, args []string) error {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := f1data.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if format != "" {
		cfg.Format = format
	}
	if len(seasons) > 0 {
		cfg.Seasons = seasons
	}

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	executor := f1data.NewRequestExecutor(cfg.Source, logger)
	telemetry := adapters.NewOpenF1Adapter(executor, cfg.OpenF1BaseURL, logger)
	results := adapters.NewErgastAdapter(executor, cfg.ErgastBaseURL, logger)

	snk, err := buildSink(cfg, logger)
	if err != nil {
		return err
	}

	collector := f1data.NewCollector(telemetry, results, snk, cfg, logger)
	for _, year := range cfg.Seasons {
		report := collector.CollectSeason(year)
		report.Render(os.Stdout)
	}
	return nil
}

func buildLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}

func buildSink(cfg *f1data.Config, logger *zap.Logger) (f1data.Sink, error) {
	switch cfg.Format {
	case "", "csv":
		return sink.NewCSVSink(cfg.OutputDir, logger), nil
	case "json":
		return sink.NewJSONSink(cfg.OutputDir, logger), nil
	case "sqlite":
		return sink.NewSQLiteSink(filepath.Join(cfg.OutputDir, "f1data.db"), logger), nil
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Format)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	collectCmd.Flags().StringVar(&cfgPath, "config", "", "Path to a YAML config file")
	collectCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default: data)")
	collectCmd.Flags().StringVar(&format, "format", "", "Output format: csv, json, or sqlite (default: csv)")
	collectCmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Seasons to collect (default: 2023,2024)")
	rootCmd.AddCommand(collectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
