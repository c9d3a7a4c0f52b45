package cli

import (
	"fmt"

	"github.com/Domenick1991/departures/internal/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// BoardCmd returns the board command
func BoardCmd(load configLoader) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the departures board",
		Long: `Print one row per departing flight.

Missing departure times show as "---" and unassigned terminals as "TBD".

Examples:
  departures board              # destination, airline, flight, time, terminal, status
  departures board --compact    # without the status column`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			board, times, err := newBoard(cfg, out)
			if err != nil {
				return err
			}

			layout := render.LayoutDetailed
			if compact || cfg.Display.Compact {
				layout = render.LayoutCompact
			}
			printer := render.NewPrinter(out,
				render.WithLayout(layout),
				render.WithTimeFormatter(times),
				render.WithColor(cfg.Display.Color && !color.NoColor),
			)

			if _, err := fmt.Fprintf(out, "Departures from %s\n", board.CurrentAirport()); err != nil {
				return fmt.Errorf("print header: %w", err)
			}
			return printer.Print(board)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "omit the status column")
	return cmd
}
