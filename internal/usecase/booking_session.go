package usecase

import (
	"context"
	"sync"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"
)

// BookingSession coordinates one booking page: a single skip list load at a
// time and the selection made against it.
//
// Lock order is controller -> store; the store never calls the controller.
type BookingSession struct {
	ID        string
	CreatedAt time.Time

	controller *SkipFetchController
	store      *SelectionStore

	mu       sync.Mutex
	postcode string
	area     string
	touched  time.Time
}

func NewBookingSession(id string, source interfaces.ISkipSource, now time.Time) *BookingSession {
	s := &BookingSession{
		ID:         id,
		CreatedAt:  now,
		controller: NewSkipFetchController(source),
		store:      NewSelectionStore(),
		touched:    now,
	}
	s.controller.OnChange(s.store.Reconcile)
	return s
}

// Load starts a load for the given location, superseding any outstanding one.
func (s *BookingSession) Load(postcode, area string) (entities.FetchResult, error) {
	s.mu.Lock()
	s.postcode, s.area = postcode, area
	s.mu.Unlock()
	return s.controller.Load(postcode, area)
}

// Location returns the postcode and area of the latest load.
func (s *BookingSession) Location() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postcode, s.area
}

func (s *BookingSession) Await(ctx context.Context) (entities.FetchResult, error) {
	return s.controller.Await(ctx)
}

func (s *BookingSession) Select(id int) error {
	return s.store.Select(id)
}

func (s *BookingSession) SetHovered(id *int) {
	s.store.SetHovered(id)
}

// Snapshot reads the result before the selection so a summary never refers
// to a list newer than the one it is shown with.
func (s *BookingSession) Snapshot() entities.BookingSnapshot {
	res := s.controller.Result()
	sel := s.store.State()

	s.mu.Lock()
	touched := s.touched
	s.mu.Unlock()

	return entities.BookingSnapshot{
		SessionID: s.ID,
		Result:    res,
		Selection: sel,
		Summary:   entities.SummarizeSelection(res, sel),
		CreatedAt: s.CreatedAt,
		UpdatedAt: touched,
	}
}

// SelectedSkip returns the selected skip if it is part of the visible list.
func (s *BookingSession) SelectedSkip() (entities.Skip, bool) {
	res := s.controller.Result()
	sel := s.store.State()
	if sel.Selected == nil {
		return entities.Skip{}, false
	}
	return entities.FindSkip(res.Available(), *sel.Selected)
}

func (s *BookingSession) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.touched) {
		s.touched = now
	}
}

func (s *BookingSession) IdleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched)
}

// Close cancels any outstanding load; its result is never applied.
func (s *BookingSession) Close() {
	s.controller.Close()
}
