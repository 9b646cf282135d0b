// Package main is the entry point for the aflstats CLI tool, which ingests
// per-player team sheet exports and publishes comparative match reports.
package main

import (
	"log/slog"
	"os"

	"github.com/isports/aflstats/cmd"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cmd.Execute()
}
