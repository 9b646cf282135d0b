package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/model"
)

var dropForce bool

// dropCmd deletes a match and its stored imports.
var dropCmd = &cobra.Command{
	Use:   "drop <match-id>",
	Short: "Delete a match and everything stored for it",
	Long:  "Permanently delete a match: its rosters, published report rows and stored import files.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete match %d and its report.\n", matchID)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	m, err := db.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Fprintln(os.Stdout, "Match does not exist, nothing to drop.")
		return nil
	}

	blobs, err := openBlobs()
	if err != nil {
		return err
	}
	for _, side := range []model.Side{model.SideHome, model.SideAway} {
		if ref := m.ImportRef(side); ref != "" {
			if err := blobs.Delete(ref); err != nil {
				return fmt.Errorf("delete %s import: %w", side, err)
			}
		}
	}
	if err := db.DeleteMatch(ctx, matchID); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted match %d\n", matchID)
	return nil
}
