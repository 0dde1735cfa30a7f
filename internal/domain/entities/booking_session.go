package entities

import "time"

// BookingSnapshot is a read-only view of one booking session: the visible
// fetch result, the selection and the summary derived from both.
type BookingSnapshot struct {
	SessionID string            `json:"session_id"`
	Result    FetchResult       `json:"result"`
	Selection Selection         `json:"selection"`
	Summary   *SelectionSummary `json:"summary,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SelectionSummary describes the selected skip when it is part of the
// visible list. It backs the "Continue" bar of the booking page.
type SelectionSummary struct {
	SkipID         int     `json:"skip_id"`
	Label          string  `json:"label"`
	TotalPrice     float64 `json:"total_price"`
	PermitRequired bool    `json:"permit_required"`
}

// SummarizeSelection derives the summary, or nil when nothing selected is
// currently visible.
func SummarizeSelection(res FetchResult, sel Selection) *SelectionSummary {
	if sel.Selected == nil {
		return nil
	}
	skip, ok := FindSkip(res.Available(), *sel.Selected)
	if !ok {
		return nil
	}
	return &SelectionSummary{
		SkipID:         skip.ID,
		Label:          SkipLabel(skip.Size),
		TotalPrice:     skip.TotalPrice(),
		PermitRequired: skip.PermitRequired(),
	}
}
