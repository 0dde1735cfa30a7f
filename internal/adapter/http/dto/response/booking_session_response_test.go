package response

import (
	"testing"
	"time"

	"skiphire/internal/domain/entities"
)

func TestFromBookingSnapshot(t *testing.T) {
	now := time.Now().UTC()
	skips := []entities.Skip{
		{ID: 1, Size: 4, HirePeriodDays: 14, PriceBeforeVAT: 278, VAT: 20, AllowedOnRoad: true},
		{ID: 2, Size: 8, HirePeriodDays: 14, PriceBeforeVAT: 375, VAT: 20, AllowedOnRoad: false},
	}
	result := entities.NewPendingResult(3, "NR32", "Lowestoft", now).Succeed(skips, now)
	sel := entities.Selection{Selected: entities.IntPtr(2), Hovered: entities.IntPtr(1)}

	res := FromBookingSnapshot(entities.BookingSnapshot{
		SessionID: "s-1",
		Result:    result,
		Selection: sel,
		Summary:   entities.SummarizeSelection(result, sel),
		CreatedAt: now,
		UpdatedAt: now,
	})

	if res.Status != "success" || res.Generation != 3 || len(res.Skips) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	first, second := res.Skips[0], res.Skips[1]
	if first.FormattedTotal != "333.60" || first.PermitRequired || !first.Hovered || first.Selected {
		t.Fatalf("unexpected first skip: %+v", first)
	}
	if second.Label != "8 Yard Skip" || !second.MostPopular || !second.PermitRequired || !second.Selected {
		t.Fatalf("unexpected second skip: %+v", second)
	}
	if res.Summary == nil || !res.Summary.CanContinue || res.Summary.FormattedTotal != "450.00" {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}

func TestFromBookingSnapshot_PendingHasEmptyList(t *testing.T) {
	now := time.Now().UTC()
	res := FromBookingSnapshot(entities.BookingSnapshot{
		SessionID: "s-1",
		Result:    entities.NewPendingResult(1, "NR32", "Lowestoft", now),
		Selection: entities.Selection{Selected: entities.IntPtr(2)},
	})

	if res.Status != "pending" || res.Skips == nil || len(res.Skips) != 0 {
		t.Fatalf("expected empty non-nil skips, got %+v", res.Skips)
	}
	if res.Summary != nil {
		t.Fatalf("expected no summary while pending")
	}
	if res.SelectedID == nil || *res.SelectedID != 2 {
		t.Fatalf("expected selection to be reported")
	}
}

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	res := FromQuote(entities.Quote{ID: "q-1", SessionID: "s-1", SkipID: 2, Size: 6, TotalPrice: 366, PermitRequired: true, CreatedAt: now})
	if res.QuoteID != "q-1" || res.Label != "6 Yard Skip" || res.FormattedTotal != "366.00" {
		t.Fatalf("unexpected quote response: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}
