package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"AFLSTATS_DB", "AFLSTATS_DATA_DIR", "AFLSTATS_ALLOW_REPUBLISH", "AFLSTATS_LEADERBOARD_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBPath == "" || cfg.DataDir == "" {
		t.Errorf("expected default paths, got %+v", cfg)
	}
	if cfg.AllowRepublish {
		t.Error("republish must default off")
	}
	if cfg.LeaderboardLimit != 20 {
		t.Errorf("default leaderboard limit: got %d, want 20", cfg.LeaderboardLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AFLSTATS_DB", "/tmp/x.db")
	t.Setenv("AFLSTATS_ALLOW_REPUBLISH", "true")
	t.Setenv("AFLSTATS_LEADERBOARD_LIMIT", "5")

	cfg := Load()
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("db path override: %q", cfg.DBPath)
	}
	if !cfg.AllowRepublish {
		t.Error("expected republish on")
	}
	if cfg.LeaderboardLimit != 5 {
		t.Errorf("limit override: %d", cfg.LeaderboardLimit)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("AFLSTATS_ALLOW_REPUBLISH", "banana")
	t.Setenv("AFLSTATS_LEADERBOARD_LIMIT", "lots")

	cfg := Load()
	if cfg.AllowRepublish {
		t.Error("unparsable bool must fall back to default")
	}
	if cfg.LeaderboardLimit != 20 {
		t.Errorf("unparsable int must fall back: %d", cfg.LeaderboardLimit)
	}
}
