package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/notify"
	"github.com/Domenick1991/departures/internal/render"
	"github.com/Domenick1991/departures/internal/service/departures"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

// RootCmd builds the departures command tree writing board output to out.
func RootCmd(out io.Writer) *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "departures",
		Short: "Airport departures board",
		Long: `Print the departures board of an airport, alert passengers about
their flights and price a trip.

The board is seeded from a YAML config (--config, $CONFIG_PATH or ./config.yaml).
Without a config file the JFK demo board is used.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	load := func() (*config.Config, error) {
		return loadConfig(cfgPath)
	}

	rootCmd.AddCommand(BoardCmd(load))
	rootCmd.AddCommand(AlertCmd(load))
	rootCmd.AddCommand(FareCmd(load))
	return rootCmd
}

type configLoader func() (*config.Config, error)

func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Printf("no %s found, using the demo board", path)
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newBoard also returns the time formatter so the printer renders in the same locale.
func newBoard(cfg *config.Config, out io.Writer) (*departures.DepartureBoard, *render.TimeFormatter, error) {
	times, err := render.NewTimeFormatter(cfg.Display.Locale)
	if err != nil {
		return nil, nil, fmt.Errorf("display.locale: %w", err)
	}
	flights, err := cfg.Board.SeedFlights(time.Now())
	if err != nil {
		return nil, nil, err
	}

	board := departures.NewDepartureBoard(
		notify.NewConsole(out),
		departures.WithCurrentAirport(cfg.Board.CurrentAirport),
		departures.WithTimeFormatter(times),
	)
	board.Add(flights...)
	return board, times, nil
}
