package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/storage"
)

func TestRun(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	res, err := Run(ctx, db)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Sports != 1 || res.Seasons != 1 || res.Locations != 1 || res.Matches != 1 {
		t.Errorf("unexpected counters: %+v", res)
	}
	if res.Teams != 2 || res.Players != 2*playersPerTeam {
		t.Errorf("team/player counters: %+v", res)
	}

	wantCats, wantLeaves := 0, 0
	for _, cat := range catalog.AFLCatalog() {
		wantCats++
		wantLeaves += len(cat.Leaves)
	}
	if res.Categories != wantCats || res.Metrics != wantLeaves {
		t.Errorf("catalog counters: got %d/%d, want %d/%d",
			res.Categories, res.Metrics, wantCats, wantLeaves)
	}

	// The stored catalog must build a clean registry.
	defs, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if _, err := catalog.NewRegistry(defs); err != nil {
		t.Errorf("seeded catalog failed registry construction: %v", err)
	}

	// One draft match with both rosters filled.
	matches, err := db.ListMatches(ctx)
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d (err %v)", len(matches), err)
	}
	roster, err := db.GetRoster(ctx, matches[0].ID)
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if len(roster) != 2*playersPerTeam {
		t.Errorf("roster entries: got %d, want %d", len(roster), 2*playersPerTeam)
	}
}
