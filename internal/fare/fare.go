// Package fare prices a trip from checked bags, distance and the number of travelers.
package fare

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultBagCharge     = 25.0
	DefaultMileageCharge = 0.10
)

// Calculator holds per-bag and per-mile charges. Inputs are trusted to be non-negative.
type Calculator struct {
	BagCharge     float64
	MileageCharge float64
}

var DefaultCalculator = Calculator{
	BagCharge:     DefaultBagCharge,
	MileageCharge: DefaultMileageCharge,
}

func NewCalculator(bagCharge, mileageCharge float64) Calculator {
	return Calculator{BagCharge: bagCharge, MileageCharge: mileageCharge}
}

func (c Calculator) Calculate(checkedBags, distance, travelers int) float64 {
	bagCost := float64(checkedBags) * c.BagCharge
	mileageCost := float64(distance) * c.MileageCharge
	return (bagCost + mileageCost) * float64(travelers)
}

// CalculateAirfare uses the default charges: $25 per bag and $0.10 per mile, per traveler.
func CalculateAirfare(checkedBags, distance, travelers int) float64 {
	return DefaultCalculator.Calculate(checkedBags, distance, travelers)
}

// FormatUSD renders an amount for display, e.g. "$1,250.00".
func FormatUSD(amount float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	if amount < 0 {
		return p.Sprintf("-$%.2f", -amount)
	}
	return p.Sprintf("$%.2f", amount)
}
