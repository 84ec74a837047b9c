package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type slotsOutput struct {
	OpenTime  string   `json:"openTime"`
	CloseTime string   `json:"closeTime"`
	Interval  int      `json:"intervalMinutes"`
	Slots     []string `json:"slots"`
}

func slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Print the slot grid of a lounge day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			schedule, err := cfg.Lounge.Schedule()
			if err != nil {
				return err
			}

			grid := schedule.Grid()
			out := slotsOutput{
				OpenTime:  schedule.OpenTime().String(),
				CloseTime: schedule.CloseTime().String(),
				Interval:  grid.Interval(),
				Slots:     make([]string, 0, grid.Len()),
			}
			for _, label := range grid.Slots() {
				out.Slots = append(out.Slots, string(label))
			}

			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "#\tSTART\tLABEL\n")
			for i, label := range out.Slots {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, grid.Start(i), label)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d slots, %s-%s, every %d min\n",
				len(out.Slots), out.OpenTime, out.CloseTime, out.Interval)
			return nil
		},
	}
}
