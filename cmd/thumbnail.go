package main

import (
	"context"
	"fmt"
	"strconv"
	"travel/internal/config"
	"travel/pkg/domain"

	"github.com/spf13/cobra"
)

// thumbnailCommand resolves the URLs of one record synchronously, deriving
// its thumbnail when missing.
func thumbnailCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbnail <hotel|stay> <id>",
		Short: "Resolves the image and thumbnail URLs of one record",
		Args:  cobra.ExactArgs(2), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			kind := domain.ImageKind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown record kind %q", args[0])
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q: %w", args[1], err)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			m := getMedia(cfg, strg)

			rec, err := m.Load(ctx, kind, id)
			if err != nil {
				return fmt.Errorf("could not load record: %w", err)
			}

			thumbnail, err := m.ThumbnailURL(ctx, rec)
			if err != nil {
				return fmt.Errorf("could not resolve thumbnail: %w", err)
			}

			cmd.Printf("image:     %s\n", m.ImageURL(rec))
			cmd.Printf("thumbnail: %s\n", thumbnail)

			return nil
		},
	}

	return cmd
}
