package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/blobstore"
	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/config"
	"github.com/isports/aflstats/internal/storage"
)

var (
	cfg     *config.Config
	dbPath  string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "aflstats",
	Short: "AFL match statistics pipeline",
	Long:  "Import team stat sheets, publish match reports and rank players across published matches.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", cfg.DataDir, "directory for stored import files")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(sqlCmd)
}

func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

func openBlobs() (*blobstore.Store, error) {
	return blobstore.New(dataDir)
}

// loadRegistry builds the catalog registry from the stored definitions.
func loadRegistry(ctx context.Context, db *storage.DB) (*catalog.Registry, error) {
	defs, err := db.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("metric catalog is empty; run 'aflstats seed' first")
	}
	return catalog.NewRegistry(defs)
}
