package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/departures/internal/domain"
)

// Console writes each alert message as one line.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Send(ctx context.Context, alert domain.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.out, alert.Message); err != nil {
		return fmt.Errorf("write alert for flight %s: %w", alert.FlightNumber, err)
	}
	return nil
}
