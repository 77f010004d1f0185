package cli

import (
	"fmt"
	"os"

	"github.com/pkarlsen/fnoltriage/internal/logging"
	"github.com/pkarlsen/fnoltriage/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fnoltriage",
	Short: "FNOL triage - extract, validate and route first-notice-of-loss claims",
	Long: `fnoltriage ingests First Notice of Loss documents (PDF or plain text),
extracts structured claim fields with deterministic pattern rules,
checks the result for internal contradictions, and recommends a
processing route (Fast-track, Manual Review, Investigation, ...)
with a human-readable rationale.

Extraction is rule-based and fully offline: the same document always
produces the same decision.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fnoltriage v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fnoltriage/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console or json)")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.fnoltriage")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FNOLTRIAGE_*
	viper.SetEnvPrefix("FNOLTRIAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig layers viper values and environment over the defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("output.dir") {
		cfg.Output.Dir = viper.GetString("output.dir")
	}
	if viper.IsSet("output.pretty") {
		cfg.Output.Pretty = viper.GetBool("output.pretty")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.ttl") {
		cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	}
	if viper.IsSet("logging.level") {
		cfg.Logging.Level = viper.GetString("logging.level")
	}

	// These keys are flag-bound, so viper resolves the full
	// flag > env > file > default hierarchy for them.
	if format := viper.GetString("logging.format"); format != "" {
		cfg.Logging.Format = format
	}
	cfg.Output.Verbose = viper.GetBool("output.verbose")
	if cfg.Output.Verbose {
		cfg.Logging.Level = "debug"
	}

	// Forward-compatibility hook for assisted extraction. Its presence
	// never changes the deterministic path.
	cfg.Extractor.Credential = os.Getenv("OPENAI_API_KEY")

	return cfg
}

// newLogger builds the process-wide logger from the config.
func newLogger(cfg *model.Config) *zap.Logger {
	return logging.New(cfg.Logging.Level, cfg.Logging.Format)
}
