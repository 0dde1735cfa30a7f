package usecase

import (
	"errors"
	"testing"
	"time"

	"skiphire/internal/domain/entities"
)

func successResult(ids ...int) entities.FetchResult {
	skips := make([]entities.Skip, 0, len(ids))
	for _, id := range ids {
		skips = append(skips, entities.Skip{ID: id, Size: id + 3, PriceBeforeVAT: 100, VAT: 20})
	}
	now := time.Now().UTC()
	return entities.NewPendingResult(1, "NR32", "Lowestoft", now).Succeed(skips, now)
}

func TestSelectionStore_Select(t *testing.T) {
	t.Run("rejected before any list", func(t *testing.T) {
		s := NewSelectionStore()
		if err := s.Select(1); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})

	t.Run("replace selection", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))

		if err := s.Select(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Select(2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.State().Selected; got == nil || *got != 2 {
			t.Fatalf("expected selected 2, got %v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))

		_ = s.Select(1)
		once := s.State()
		_ = s.Select(1)
		twice := s.State()
		if *once.Selected != *twice.Selected || twice.Hovered != nil {
			t.Fatalf("expected identical state, got %+v vs %+v", once, twice)
		}
	})

	t.Run("absent id leaves state unchanged", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))

		if err := s.Select(99); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
		if s.State().Selected != nil {
			t.Fatalf("expected no selection")
		}

		_ = s.Select(1)
		_ = s.Select(99)
		if got := s.State().Selected; got == nil || *got != 1 {
			t.Fatalf("expected selection to stay 1, got %v", got)
		}
	})
}

func TestSelectionStore_SetHovered(t *testing.T) {
	s := NewSelectionStore()

	s.SetHovered(entities.IntPtr(5))
	if got := s.State().Hovered; got == nil || *got != 5 {
		t.Fatalf("expected hovered 5, got %v", got)
	}

	s.SetHovered(nil)
	if s.State().Hovered != nil {
		t.Fatalf("expected hovered cleared")
	}
}

func TestSelectionStore_Reconcile(t *testing.T) {
	t.Run("clears ids missing from a new list", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))
		_ = s.Select(2)
		s.SetHovered(entities.IntPtr(2))

		s.Reconcile(successResult(3, 4))
		st := s.State()
		if st.Selected != nil || st.Hovered != nil {
			t.Fatalf("expected stale ids cleared, got %+v", st)
		}
	})

	t.Run("keeps ids still present", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))
		_ = s.Select(1)

		s.Reconcile(successResult(1, 7))
		if got := s.State().Selected; got == nil || *got != 1 {
			t.Fatalf("expected selection kept, got %v", got)
		}
	})

	t.Run("pending and failure empty the list but keep the selection", func(t *testing.T) {
		s := NewSelectionStore()
		s.Reconcile(successResult(1, 2))
		_ = s.Select(1)

		now := time.Now().UTC()
		pending := entities.NewPendingResult(2, "NR32", "Lowestoft", now)
		s.Reconcile(pending)
		if err := s.Select(2); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected select rejected while pending, got %v", err)
		}

		s.Reconcile(pending.Fail(now))
		if got := s.State().Selected; got == nil || *got != 1 {
			t.Fatalf("expected selection kept across failure, got %v", got)
		}
	})
}

func TestComputeTotalAndPermit(t *testing.T) {
	skip := entities.Skip{ID: 1, Size: 4, HirePeriodDays: 7, PriceBeforeVAT: 200, VAT: 20, AllowedOnRoad: true}
	if got := ComputeTotal(skip); got != 240 {
		t.Fatalf("expected 240, got %v", got)
	}
	if IsPermitRequired(skip) {
		t.Fatalf("expected no permit for road-allowed skip")
	}
	skip.AllowedOnRoad = false
	if !IsPermitRequired(skip) {
		t.Fatalf("expected permit for off-road skip")
	}
}
