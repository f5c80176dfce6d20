package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eodctl",
		Short:         "Build marketstack end-of-day requests and store saved responses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newURLCmd(), newIngestCmd())
	return root
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("eodctl failed", "error", err)
		os.Exit(1)
	}
}
