package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/leaderboard"
	"github.com/isports/aflstats/internal/report"
)

var (
	lbSeasonID int64
	lbTeamID   int64
	lbLimit    int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <metric-alias>",
	Short: "Rank players by a metric across published matches",
	Long:  "Rank players by a per-player metric (e.g. DISPOSAL, G, PER_1) across all published match reports. Counting metrics sum per player; percentage and ratio metrics average.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().Int64Var(&lbSeasonID, "season", 0, "restrict to one season id")
	leaderboardCmd.Flags().Int64Var(&lbTeamID, "team", 0, "restrict to one team id")
	leaderboardCmd.Flags().IntVar(&lbLimit, "limit", 0, "max rows (default from config)")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	alias := strings.ToUpper(args[0])

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	registry, err := loadRegistry(cmd.Context(), db)
	if err != nil {
		return err
	}

	engine := leaderboard.New(db, registry, cfg.LeaderboardLimit)
	res, err := engine.Rank(cmd.Context(), alias, leaderboard.Filter{
		SeasonID: lbSeasonID,
		TeamID:   lbTeamID,
		Limit:    lbLimit,
	})
	if err != nil {
		return err
	}
	if len(res.Rows) == 0 {
		fmt.Fprintln(os.Stdout, "No published values for this metric yet.")
		return nil
	}
	report.PrintLeaderboard(os.Stdout, res.Metric, res.Rows)
	return nil
}
