package response

import (
	"time"

	"skiphire/internal/domain/entities"
)

type SkipResponse struct {
	ID             int     `json:"id"`
	Size           int     `json:"size"`
	Label          string  `json:"label"`
	Description    string  `json:"description"`
	HirePeriodDays int     `json:"hire_period_days"`
	PriceBeforeVAT float64 `json:"price_before_vat"`
	VAT            float64 `json:"vat"`
	TotalPrice     float64 `json:"total_price"`
	FormattedTotal string  `json:"formatted_total"`
	AllowedOnRoad  bool    `json:"allowed_on_road"`
	PermitRequired bool    `json:"permit_required"`
	MostPopular    bool    `json:"most_popular"`
	Selected       bool    `json:"selected"`
	Hovered        bool    `json:"hovered"`
}

type SummaryResponse struct {
	SkipID         int     `json:"skip_id"`
	Label          string  `json:"label"`
	TotalPrice     float64 `json:"total_price"`
	FormattedTotal string  `json:"formatted_total"`
	PermitRequired bool    `json:"permit_required"`
	CanContinue    bool    `json:"can_continue"`
}

type BookingSessionResponse struct {
	SessionID  string           `json:"session_id"`
	Status     string           `json:"status"`
	Message    string           `json:"message,omitempty"`
	Postcode   string           `json:"postcode"`
	Area       string           `json:"area"`
	Generation uint64           `json:"generation"`
	Skips      []SkipResponse   `json:"skips"`
	SelectedID *int             `json:"selected_skip_id"`
	HoveredID  *int             `json:"hovered_skip_id"`
	Summary    *SummaryResponse `json:"summary"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// FromBookingSnapshot renders the page state. Skips is always an array, empty
// while the list is pending or after a failure.
func FromBookingSnapshot(s entities.BookingSnapshot) BookingSessionResponse {
	available := s.Result.Available()
	skips := make([]SkipResponse, 0, len(available))
	for _, sk := range available {
		skips = append(skips, fromSkip(sk, s.Selection))
	}

	res := BookingSessionResponse{
		SessionID:  s.SessionID,
		Status:     string(s.Result.Status),
		Message:    s.Result.Message,
		Postcode:   s.Result.Postcode,
		Area:       s.Result.Area,
		Generation: s.Result.Generation,
		Skips:      skips,
		SelectedID: s.Selection.Selected,
		HoveredID:  s.Selection.Hovered,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Summary != nil {
		res.Summary = &SummaryResponse{
			SkipID:         s.Summary.SkipID,
			Label:          s.Summary.Label,
			TotalPrice:     s.Summary.TotalPrice,
			FormattedTotal: entities.FormatCents(s.Summary.TotalPrice),
			PermitRequired: s.Summary.PermitRequired,
			CanContinue:    true,
		}
	}
	return res
}

func fromSkip(sk entities.Skip, sel entities.Selection) SkipResponse {
	return SkipResponse{
		ID:             sk.ID,
		Size:           sk.Size,
		Label:          entities.SkipLabel(sk.Size),
		Description:    sk.Description(),
		HirePeriodDays: sk.HirePeriodDays,
		PriceBeforeVAT: sk.PriceBeforeVAT,
		VAT:            sk.VAT,
		TotalPrice:     sk.TotalPrice(),
		FormattedTotal: sk.FormattedTotal(),
		AllowedOnRoad:  sk.AllowedOnRoad,
		PermitRequired: sk.PermitRequired(),
		MostPopular:    sk.MostPopular(),
		Selected:       sel.Selected != nil && *sel.Selected == sk.ID,
		Hovered:        sel.Hovered != nil && *sel.Hovered == sk.ID,
	}
}

type StepsResponse struct {
	Steps []entities.BookingStep `json:"steps"`
}

func FromBookingSteps(steps []entities.BookingStep) StepsResponse {
	return StepsResponse{Steps: steps}
}
