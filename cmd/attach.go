package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/model"
)

var attachCmd = &cobra.Command{
	Use:   "attach <match-id> <home|away> <stats.csv>",
	Short: "Attach a team's import file to a draft match",
	Long:  "Store a vendor stat sheet for one side of a draft match. Attaching again replaces the previous file. Published matches cannot be changed.",
	Args:  cobra.ExactArgs(3),
	RunE:  runAttach,
}

func runAttach(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}
	side, err := parseSide(args[1])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
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
		return fmt.Errorf("match %d not found", matchID)
	}
	if m.Status == model.StatusPublished {
		return fmt.Errorf("match %d is published; imports can no longer change", matchID)
	}

	blobs, err := openBlobs()
	if err != nil {
		return err
	}
	ref, err := blobs.Store(data, m.ImportRef(side))
	if err != nil {
		return fmt.Errorf("store import: %w", err)
	}
	if _, err := db.SetImportRef(ctx, matchID, side, ref); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Attached %s import for match %d (%s)\n", side, matchID, ref)
	return nil
}

func parseSide(s string) (model.Side, error) {
	switch s {
	case "home":
		return model.SideHome, nil
	case "away":
		return model.SideAway, nil
	default:
		return 0, fmt.Errorf("side must be 'home' or 'away', got %q", s)
	}
}
