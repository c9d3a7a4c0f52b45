package cli

import (
	"github.com/spf13/cobra"
)

// AlertCmd returns the alert command
func AlertCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "alert",
		Short: "Send a status message to the passengers of every flight on the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			board, _, err := newBoard(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return board.AlertPassengers(cmd.Context(), board.Flights())
		},
	}
}
