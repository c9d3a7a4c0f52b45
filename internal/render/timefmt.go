package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

const (
	TimePlaceholder     = "---"
	TerminalPlaceholder = "TBD"
)

const DefaultLocale = monday.LocaleEnUS

var ErrUnknownLocale = errors.New("unknown locale")

// twelveHourLocales use an AM/PM clock for short times; the rest use 24 hours.
var twelveHourLocales = map[monday.Locale]bool{
	monday.LocaleEnUS: true,
}

// TimeFormatter renders the short time-of-day of a departure for one locale.
// Construct one per board or printer; it holds no shared state.
type TimeFormatter struct {
	locale monday.Locale
	layout string
}

// ParseLocale returns DefaultLocale for an empty string. Matching is exact ("en_US").
func ParseLocale(locale string) (monday.Locale, error) {
	if locale == "" {
		return DefaultLocale, nil
	}
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

func NewTimeFormatter(locale string) (*TimeFormatter, error) {
	l, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return newTimeFormatter(l), nil
}

// DefaultTimeFormatter formats in DefaultLocale.
func DefaultTimeFormatter() *TimeFormatter {
	return newTimeFormatter(DefaultLocale)
}

func newTimeFormatter(l monday.Locale) *TimeFormatter {
	layout := "15:04"
	if twelveHourLocales[l] {
		layout = "3:04 PM"
	}
	return &TimeFormatter{locale: l, layout: layout}
}

// Format returns TimePlaceholder for a missing departure time.
func (f *TimeFormatter) Format(t *time.Time) string {
	if t == nil {
		return TimePlaceholder
	}
	return monday.Format(*t, f.layout, f.locale)
}

func (f *TimeFormatter) Locale() string {
	return string(f.locale)
}
