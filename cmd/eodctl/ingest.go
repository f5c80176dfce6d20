package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"eod_backend/internal/app/di"
	infradb "eod_backend/internal/platform/db"
)

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest FILE...",
		Short: "Store saved end-of-day response bodies in the database",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runIngest,
	}
}

func runIngest(cmd *cobra.Command, files []string) error {
	db, err := infradb.OpenDB()
	if err != nil {
		return err
	}
	uc := di.NewIngestUsecase(db)

	total := 0
	for _, path := range files {
		n, err := ingestFile(cmd, uc, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		slog.Info("ingested eod response", "file", path, "records", n)
		total += n
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ingested %d records from %d files\n", total, len(files))
	return err
}

type ingester interface {
	Ingest(ctx context.Context, body io.Reader) (int, error)
}

func ingestFile(cmd *cobra.Command, uc ingester, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return uc.Ingest(cmd.Context(), f)
}
