package request

import (
	"errors"
	"strings"
)

var (
	ErrMissingSkipID = errors.New("skip_id is required")
)

// LocationRequest starts or reloads a booking session. Both fields empty
// means "use the current location" (or the configured default on start).
type LocationRequest struct {
	Postcode string `json:"postcode"`
	Area     string `json:"area"`
}

func (r LocationRequest) Resolve() (string, string) {
	return strings.TrimSpace(r.Postcode), strings.TrimSpace(r.Area)
}

type SelectSkipRequest struct {
	SkipID *int `json:"skip_id"`
}

func (r SelectSkipRequest) ResolveSkipID() (int, error) {
	if r.SkipID == nil {
		return 0, ErrMissingSkipID
	}
	return *r.SkipID, nil
}

// HoverSkipRequest sets the hovered skip; a null or missing skip_id clears it.
type HoverSkipRequest struct {
	SkipID *int `json:"skip_id"`
}
