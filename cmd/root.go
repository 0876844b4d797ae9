package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/config"
	"github.com/abhisek/bokibattle/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bokibattle",
	Short: "Bookkeeping drill battles in the terminal",
	Long:  "簿記バトル: answer 簿記3級 journal, account and calculation questions before the monster attacks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BOKIBATTLE_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the --db flag, which
// takes priority over BOKIBATTLE_DB.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	cfg.DBPath = dbPath
	return st, cfg, nil
}
