package main

import (
	"context"
	"fmt"
	"travel/internal/config"
	"travel/pkg/domain"
	"travel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func backfillCommand(cfg *config.Config) *cobra.Command {
	var limit uint

	cmd := &cobra.Command{
		Use:       "backfill [hotel|stay]...",
		Short:     "Enqueues thumbnail jobs for records that have an image but no thumbnail",
		ValidArgs: []string{string(domain.ImageKindHotel), string(domain.ImageKindStay)},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			kinds := []domain.ImageKind{domain.ImageKindHotel, domain.ImageKindStay}
			if len(args) > 0 {
				kinds = kinds[:0]
				for _, arg := range args {
					kinds = append(kinds, domain.ImageKind(arg))
				}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			m := getMedia(cfg, strg)

			for _, kind := range kinds {
				n, err := m.Backfill(ctx, kind, limit)
				if err != nil {
					return fmt.Errorf("could not backfill %s thumbnails: %w", kind, err)
				}
				logger.Info(ctx, "backfill done", zap.String("kind", string(kind)), zap.Int("enqueued", n))
				cmd.Printf("%s: %d jobs enqueued\n", kind, n)
			}

			return nil
		},
	}
	cmd.Flags().UintVarP(&limit, "limit", "l", cfg.Worker.BackfillBatchSize, "Maximum records per kind")

	return cmd
}
