package entities

import "time"

// FetchStatus is the tri-state outcome of one skip list load.
type FetchStatus string

const (
	FetchStatusPending FetchStatus = "pending"
	FetchStatusSuccess FetchStatus = "success"
	FetchStatusFailure FetchStatus = "failure"
)

// FetchFailureMessage is the only failure text ever shown to the user.
// The underlying transport/server error is logged, never surfaced.
const FetchFailureMessage = "Unable to load skip sizes. Please try again later."

// FetchResult is the visible result of the latest load for a location.
//
// Lifecycle:
//   - created Pending when a load begins;
//   - moves exactly once to Success or Failure;
//   - a newer load replaces it with a fresh Pending result and the old
//     load's completion is discarded (Generation no longer matches).
type FetchResult struct {
	Status     FetchStatus `json:"status"`
	Skips      []Skip      `json:"skips"`
	Message    string      `json:"message,omitempty"`
	Postcode   string      `json:"postcode"`
	Area       string      `json:"area"`
	Generation uint64      `json:"generation"`
	IssuedAt   time.Time   `json:"issued_at"`
	SettledAt  time.Time   `json:"settled_at,omitempty"`
}

func NewPendingResult(gen uint64, postcode, area string, now time.Time) FetchResult {
	return FetchResult{
		Status:     FetchStatusPending,
		Skips:      []Skip{},
		Postcode:   postcode,
		Area:       area,
		Generation: gen,
		IssuedAt:   now,
	}
}

// Succeed returns the settled copy of a pending result holding skips as returned.
func (r FetchResult) Succeed(skips []Skip, now time.Time) FetchResult {
	if skips == nil {
		skips = []Skip{}
	}
	r.Status = FetchStatusSuccess
	r.Skips = skips
	r.Message = ""
	r.SettledAt = now
	return r
}

func (r FetchResult) Fail(now time.Time) FetchResult {
	r.Status = FetchStatusFailure
	r.Skips = []Skip{}
	r.Message = FetchFailureMessage
	r.SettledAt = now
	return r
}

func (r FetchResult) IsPending() bool {
	return r.Status == FetchStatusPending
}

// Available returns the skips a selection may refer to. Only a successful
// result has any.
func (r FetchResult) Available() []Skip {
	if r.Status != FetchStatusSuccess {
		return nil
	}
	return r.Skips
}
