package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/config"
	"github.com/questline-dev/questline/internal/content"
	"github.com/questline-dev/questline/internal/engine"
	"github.com/questline-dev/questline/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "questline",
	Short: "Gamified progression tracker for self-paced learning",
	Long:  "Questline — track XP, levels, streaks, skill mastery, and spaced-repetition reviews across your learning units.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUESTLINE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./questline.yaml, ~/.config/questline)")

	rootCmd.AddCommand(lectureCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(checkpointCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then QUESTLINE_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Storage.DBPath != "" {
		return cfg.Storage.DBPath, store.EnsureDir(cfg.Storage.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the store for the resolved database path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// badgeDefs returns the badge catalog: the external file when
// configured, otherwise the built-in set.
func badgeDefs(cfg *config.Config) ([]badges.Definition, error) {
	if cfg.Badges.CatalogPath != "" {
		return badges.LoadCatalog(cfg.Badges.CatalogPath)
	}
	return badges.BuiltinDefinitions(), nil
}

// loadContentCatalog loads the configured content catalog, which event
// commands require.
func loadContentCatalog(cfg *config.Config) (*content.Catalog, error) {
	if cfg.Content.CatalogPath == "" {
		return nil, fmt.Errorf("no content catalog configured: set content.catalog_path or QUESTLINE_CONTENT_CATALOG_PATH")
	}
	return content.Load(cfg.Content.CatalogPath)
}

// loadState restores the latest snapshot, or a fresh one for a new
// learner.
func loadState(cmd *cobra.Command, st *store.Store) (*engine.Snapshot, error) {
	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return engine.NewSnapshot(), nil
	}
	if snap.Data.Version != store.SnapshotDataVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", snap.Data.Version, store.SnapshotDataVersion)
	}
	state := snap.Data.State
	state.Normalize()
	return &state, nil
}
