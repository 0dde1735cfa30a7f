package entities

import "time"

// Quote freezes the priced skip chosen in a booking session.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Monetary representation:
//   - TotalPrice is VAT-inclusive and rounded to cents when the quote is created;
//     later price changes at the source do not alter it.
type Quote struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	SkipID         int       `json:"skip_id"`
	Size           int       `json:"size"`
	HirePeriodDays int       `json:"hire_period_days"`
	PriceBeforeVAT float64   `json:"price_before_vat"`
	VAT            float64   `json:"vat"`
	TotalPrice     float64   `json:"total_price"`
	PermitRequired bool      `json:"permit_required"`
	Postcode       string    `json:"postcode"`
	Area           string    `json:"area"`
	CreatedAt      time.Time `json:"created_at"`
}
