package response

import (
	"time"

	"skiphire/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID        string    `json:"quote_id"`
	SessionID      string    `json:"session_id"`
	SkipID         int       `json:"skip_id"`
	Size           int       `json:"size"`
	Label          string    `json:"label"`
	HirePeriodDays int       `json:"hire_period_days"`
	PriceBeforeVAT float64   `json:"price_before_vat"`
	VAT            float64   `json:"vat"`
	TotalPrice     float64   `json:"total_price"`
	FormattedTotal string    `json:"formatted_total"`
	PermitRequired bool      `json:"permit_required"`
	Postcode       string    `json:"postcode"`
	Area           string    `json:"area"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:        q.ID,
		SessionID:      q.SessionID,
		SkipID:         q.SkipID,
		Size:           q.Size,
		Label:          entities.SkipLabel(q.Size),
		HirePeriodDays: q.HirePeriodDays,
		PriceBeforeVAT: q.PriceBeforeVAT,
		VAT:            q.VAT,
		TotalPrice:     q.TotalPrice,
		FormattedTotal: entities.FormatCents(q.TotalPrice),
		PermitRequired: q.PermitRequired,
		Postcode:       q.Postcode,
		Area:           q.Area,
		CreatedAt:      q.CreatedAt,
	}
}
