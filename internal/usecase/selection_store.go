package usecase

import (
	"errors"
	"sync"

	"skiphire/internal/domain/entities"
)

var ErrInvalidSelection = errors.New("invalid skip selection")

// SelectionStore keeps the selected and hovered skip ids of one session.
//
// Select only accepts ids from the list made available by the latest
// successful load. There is no deselect: a selection can only be replaced,
// or dropped by Reconcile when a new list no longer contains it.
type SelectionStore struct {
	mu        sync.Mutex
	available map[int]struct{}
	selected  *int
	hovered   *int
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{available: map[int]struct{}{}}
}

func (s *SelectionStore) Select(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.available[id]; !ok {
		return ErrInvalidSelection
	}
	s.selected = entities.IntPtr(id)
	return nil
}

// SetHovered sets the transient hover hint; nil clears it. No membership check.
func (s *SelectionStore) SetHovered(id *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		s.hovered = nil
		return
	}
	s.hovered = entities.IntPtr(*id)
}

// Reconcile installs the skips of a newly settled result. Selected and hovered
// ids missing from a successful list are cleared; a pending or failed result
// only empties the available set and keeps the previous choice.
func (s *SelectionStore) Reconcile(res entities.FetchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.available = make(map[int]struct{}, len(res.Available()))
	for _, sk := range res.Available() {
		s.available[sk.ID] = struct{}{}
	}
	if res.Status != entities.FetchStatusSuccess {
		return
	}

	if s.selected != nil {
		if _, ok := s.available[*s.selected]; !ok {
			s.selected = nil
		}
	}
	if s.hovered != nil {
		if _, ok := s.available[*s.hovered]; !ok {
			s.hovered = nil
		}
	}
}

func (s *SelectionStore) State() entities.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out entities.Selection
	if s.selected != nil {
		out.Selected = entities.IntPtr(*s.selected)
	}
	if s.hovered != nil {
		out.Hovered = entities.IntPtr(*s.hovered)
	}
	return out
}

// ComputeTotal is the VAT-inclusive price of a skip, rounded to cents.
func ComputeTotal(s entities.Skip) float64 {
	return s.TotalPrice()
}

func IsPermitRequired(s entities.Skip) bool {
	return s.PermitRequired()
}
