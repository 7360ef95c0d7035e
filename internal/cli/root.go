package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sanjay-kth/hirescore/internal/config"
	"github.com/sanjay-kth/hirescore/internal/logger"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	debugLog   bool
	jsonLog    bool
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hirescore",
	Short: "A deterministic interview answer scoring tool",
	Long: `hirescore scores candidate interview answers against reference
answers using explainable token statistics, and aggregates the results
into a per-session hiring recommendation.

It provides:
  - Four-dimension answer scoring (relevance, completeness, accuracy, clarity)
  - Session tracking with a local SQLite store
  - Three-way hiring recommendations with strengths/weaknesses summaries
  - Table and JSON output for scripting`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/hirescore/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false,
		"verbose/debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "log-json", false,
		"json format for logging")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "hirescore", "config.toml")
	}
}

// loadConfig loads the config file, falling back to defaults when none exists
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a logger honoring the config file and the global flags
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	json := jsonLog || cfg.Logging.JSON
	debug := debugLog || cfg.Logging.Debug
	return logger.New(json, debug)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hirescore %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
