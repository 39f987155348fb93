package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/config"
	"github.com/abhisek/hearwise/internal/logging"
	"github.com/abhisek/hearwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hearwise",
	Short: "Terminal hearing screening",
	Long: "Hearwise runs a pure-tone hearing screening in the terminal: tones at six\n" +
		"frequencies in each ear, an ascending level search, and a per-ear category.\n" +
		"It is a screening aid, not a medical diagnosis.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HEARWISE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/hearwise/config.toml)")
	rootCmd.PersistentFlags().String("user", "", "User ID to record results under (overrides config and HEARWISE_USER)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config, or the default path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the database named by --db, falling back to the
// configured path (HEARWISE_DB, [data] db, then the XDG default).
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		path = p
	}
	st, err := store.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return st, nil
}

// openConfiguredStore is openStore for commands that need the config
// only to find the database.
func openConfiguredStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

// newLogger builds the file logger. Headless commands also mirror warnings
// to stderr. A logger that cannot be built falls back to a no-op so the
// command still runs.
func newLogger(cfg config.Config, headless bool) *zap.Logger {
	logger, err := logging.New(logging.Config{Path: cfg.LogPath, Level: cfg.LogLevel, Stderr: headless})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return zap.NewNop()
	}
	return logger
}
