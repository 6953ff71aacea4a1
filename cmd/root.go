package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/cragcoach/internal/config"
	"github.com/abhisek/cragcoach/internal/logger"
	"github.com/abhisek/cragcoach/internal/store"
)

var (
	v   = viper.New()
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "cragcoach",
	Short: "Climbing training questionnaire",
	Long: "Cragcoach is a terminal app that collects a climber's training profile: grades, goals, " +
		"self-rated abilities, training setup and recovery.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: cragcoach.yaml in the config dir or working dir)")
	pf.String("db", "", "Path to SQLite database file (overrides CRAGCOACH_DB env var)")
	pf.String("email", "", "Account email the answers belong to")
	pf.String("endpoint", "", "Answer service URL; answers stay local when empty")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	mustBind(config.KeyConfigFile, "config")
	mustBind(config.KeyDB, "db")
	mustBind(config.KeyEmail, "email")
	mustBind(config.KeyEndpoint, "endpoint")
	mustBind(config.KeyLogLevel, "log-level")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// loadConfig resolves settings from flags, .env, environment and config file.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	return nil
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newLogger builds a logger writing to output ("stderr" or a file path).
func newLogger(output string) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Mode:       cfg.LogMode,
		Level:      cfg.LogLevel,
		OutputPath: output,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// resolveEmail picks the email from args[0] or the configured account.
func resolveEmail(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Email != "" {
		return cfg.Email, nil
	}
	return "", fmt.Errorf("no email: pass one or set --email / CRAGCOACH_EMAIL")
}
