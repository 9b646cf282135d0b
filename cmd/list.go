package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches yet. Run 'aflstats seed' to create a demo season.")
		return nil
	}
	report.PrintMatchList(os.Stdout, matches)
	return nil
}
