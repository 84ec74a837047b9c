package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	bookingRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/booking"
	getAvailabilityUC "github.com/m04kA/GameLounge-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
)

type availabilitySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Occupied  *int   `json:"occupied,omitempty"`
	Capacity  *int   `json:"capacity,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type availabilityOutput struct {
	Date            string             `json:"date"`
	GameType        string             `json:"gameType,omitempty"`
	DurationMinutes int                `json:"durationMinutes"`
	Slots           []availabilitySlot `json:"slots"`
}

func availabilityCmd() *cobra.Command {
	var gameType string
	var duration int

	cmd := &cobra.Command{
		Use:   "availability <YYYY-MM-DD>",
		Short: "Show slot availability for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			schedule, err := cfg.Lounge.Schedule()
			if err != nil {
				return err
			}
			if duration == 0 {
				duration = cfg.Lounge.DefaultDurationMinutes
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			log := cliLogger(cmd.ErrOrStderr())
			repo := bookingRepo.NewRepository(dbmetrics.Wrap(db, nil, "loungectl"))
			useCase := getAvailabilityUC.NewUseCase(repo, schedule, log)

			req := &getAvailabilityUC.Request{Date: date, DurationMinutes: duration}
			if gameType != "" {
				req.GameType = &gameType
			}

			resp, err := useCase.Execute(ctx, req)
			if err != nil {
				return err
			}

			out := availabilityOutput{
				Date:            resp.Date.Format(time.DateOnly),
				GameType:        gameType,
				DurationMinutes: resp.DurationMinutes,
				Slots:           make([]availabilitySlot, 0, len(resp.Slots)),
			}
			for _, s := range resp.Slots {
				out.Slots = append(out.Slots, availabilitySlot{
					Time:      string(s.Time),
					Available: s.Available,
					Occupied:  s.Occupied,
					Capacity:  s.Capacity,
					Reason:    string(s.Reason),
				})
			}

			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return printAvailability(cmd, out)
		},
	}

	cmd.Flags().StringVar(&gameType, "game-type", "", "Game type to check occupancy for (omit for grid-only mode)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Booking duration in minutes (defaults to lounge setting)")

	return cmd
}

func printAvailability(cmd *cobra.Command, out availabilityOutput) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "TIME\tAVAILABLE\tOCCUPIED\tREASON\n")
	for _, s := range out.Slots {
		occupied := "-"
		if s.Occupied != nil && s.Capacity != nil {
			occupied = fmt.Sprintf("%d/%d", *s.Occupied, *s.Capacity)
		}
		reason := s.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", s.Time, s.Available, occupied, reason)
	}
	return w.Flush()
}
