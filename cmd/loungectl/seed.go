package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	catalogRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/catalog"
	catalogService "github.com/m04kA/GameLounge-BookingService/internal/service/catalog"
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameLounge-BookingService/pkg/txmanager"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace game types, gallery and settings with the default storefront data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			wrapped := dbmetrics.Wrap(db, nil, "loungectl")
			svc := catalogService.NewService(
				catalogRepo.NewRepository(wrapped),
				txmanager.NewTransactionManager(wrapped),
				catalogService.CacheOptions{},
				cliLogger(cmd.ErrOrStderr()),
			)

			resp, err := svc.Seed(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d game types, %d gallery images\n",
				resp.Message, resp.GameTypes, resp.GalleryImages)
			return nil
		},
	}
}
