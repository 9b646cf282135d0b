package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/publish"
)

var publishForce bool

var publishCmd = &cobra.Command{
	Use:   "publish <match-id>",
	Short: "Derive, aggregate and publish a match report",
	Long:  "Run the full pipeline for a match: parse both import files, derive per-player values, build the team and match aggregates, and store the report. The match must have both imports attached.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&publishForce, "force", false, "republish an already-published match, replacing its report")
}

func runPublish(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	blobs, err := openBlobs()
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cmd.Context(), db)
	if err != nil {
		return err
	}

	pub := publish.New(db, blobs, registry, publish.Options{
		AllowRepublish: cfg.AllowRepublish || publishForce,
	})
	if err := pub.Publish(cmd.Context(), matchID); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Published match %d\n", matchID)
	return nil
}
