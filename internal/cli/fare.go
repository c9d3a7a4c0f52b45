package cli

import (
	"fmt"

	"github.com/Domenick1991/departures/internal/fare"
	"github.com/spf13/cobra"
)

// FareCmd returns the fare command
func FareCmd(load configLoader) *cobra.Command {
	var bags, distance, travelers int

	cmd := &cobra.Command{
		Use:   "fare",
		Short: "Calculate the airfare for checked bags and distance",
		Long: `Calculate the total airfare: each checked bag and each mile is charged,
then multiplied by the number of travelers.

Example:
  departures fare --bags 2 --distance 2000 --travelers 3    # $750.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bags < 0 || distance < 0 || travelers < 1 {
				return fmt.Errorf("bags and distance must be >= 0 and travelers >= 1")
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			calc := cfg.Fare.Calculator()
			amount := calc.Calculate(bags, distance, travelers)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fare.FormatUSD(amount))
			return err
		},
	}
	cmd.Flags().IntVar(&bags, "bags", 0, "number of checked bags")
	cmd.Flags().IntVar(&distance, "distance", 0, "distance in miles")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "number of travelers")
	return cmd
}
