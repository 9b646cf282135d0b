package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the metric catalog and a demo season into a fresh database",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := seed.Run(cmd.Context(), db)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Seeded: %s\n", res)
	return nil
}
