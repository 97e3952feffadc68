package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/config"
	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/logging"
	"github.com/abhisek/devpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "devpath",
	Short: "Track programming learning paths and graduations",
	Long: "devpath tracks learners through language learning paths, evaluates graduation\n" +
		"readiness, issues certificates and offers an AI tutor.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DEVPATH_DB env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load variables from this dotenv file (default .env if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides DEVPATH_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides DEVPATH_LOG_FORMAT)")

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(graduateCmd)
	rootCmd.AddCommand(certificatesCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment (and dotenv file) and applies flag
// overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var files []string
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		files = append(files, f)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DEVPATH_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// withApp assembles the application for one command and closes it after fn
// returns.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.Open(ctx, app.Options{Config: cfg, DBPath: dbPath, Logger: logger})
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

// pathArgs parses the <language> <level> positional pair.
func pathArgs(args []string) (string, curriculum.Level, error) {
	level, err := curriculum.ParseLevel(args[1])
	if err != nil {
		return "", "", err
	}
	return curriculum.NormalizeLanguage(args[0]), level, nil
}
