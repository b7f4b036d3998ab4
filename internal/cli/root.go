package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textlens/config"
	"textlens/internal/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "textlens",
	Short: "Text analytics for Uzbek statements",
	Long: `textlens analyzes short Uzbek texts: counts, keywords, lexicon-based
sentiment and a readability grade. When a remote analysis service is
configured it is asked first; any failure falls back to local analysis.

Example usage:
  textlens analyze -t "Bugun ajoyib kun."   # Analyze a text
  textlens batch ./maqolalar                 # Analyze every .txt/.md file
  textlens serve --addr :5001                # Serve POST /analyze`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		if err := logger.InitLogger(level, cfg.Logging.File); err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textlens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides logging.level)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
