package entities

import (
	"fmt"
	"math"
	"strconv"
)

// Skip is a single skip-hire option as returned by the pricing API.
//
// Remote payload notes:
//   - Only the fields below are read; anything else in the payload is ignored.
//   - VAT is a percentage (20 means 20%), not a factor.
type Skip struct {
	ID             int     `json:"id"`
	Size           int     `json:"size"`
	HirePeriodDays int     `json:"hire_period_days"`
	PriceBeforeVAT float64 `json:"price_before_vat"`
	VAT            float64 `json:"vat"`
	AllowedOnRoad  bool    `json:"allowed_on_road"`
}

const (
	defaultSkipDescription = "General purpose waste container"
	mostPopularSkipSize    = 8
)

var skipDescriptions = map[int]string{
	4:  "Ideal for small home projects or garden clearances",
	6:  "Perfect for medium renovations or large garden projects",
	8:  "Great for construction waste or large home renovations",
	10: "Commercial projects or major home renovations",
	12: "Large construction projects or commercial use",
	14: "Maximum capacity for industrial projects",
}

// TotalPrice returns the VAT-inclusive price rounded to cents.
func (s Skip) TotalPrice() float64 {
	return RoundCents(s.PriceBeforeVAT + s.PriceBeforeVAT*s.VAT/100)
}

// FormattedTotal renders TotalPrice with exactly two decimals ("240.00").
func (s Skip) FormattedTotal() string {
	return FormatCents(s.TotalPrice())
}

// PermitRequired reports whether placing the skip on a road needs a permit.
func (s Skip) PermitRequired() bool {
	return !s.AllowedOnRoad
}

func (s Skip) Description() string {
	if d, ok := skipDescriptions[s.Size]; ok {
		return d
	}
	return defaultSkipDescription
}

// SkipLabel names a skip by its size, e.g. "8 Yard Skip".
func SkipLabel(size int) string {
	return fmt.Sprintf("%d Yard Skip", size)
}

func (s Skip) MostPopular() bool {
	return s.Size == mostPopularSkipSize
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func FormatCents(v float64) string {
	return strconv.FormatFloat(RoundCents(v), 'f', 2, 64)
}

// FindSkip looks up a skip by id in an ordered list.
func FindSkip(skips []Skip, id int) (Skip, bool) {
	for _, s := range skips {
		if s.ID == id {
			return s, true
		}
	}
	return Skip{}, false
}
