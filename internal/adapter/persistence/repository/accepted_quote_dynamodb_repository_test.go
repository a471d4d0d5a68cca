package repository

import (
	"strings"
	"testing"
	"time"

	"ofair/internal/domain/entities"
)

func TestAcceptedQuoteItemCreatedAtOrdering(t *testing.T) {
	t.Run("epoch field orders where the trimmed string does not", func(t *testing.T) {
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		earlier := base.Add(100 * time.Millisecond)
		later := base.Add(150 * time.Millisecond)

		a := toAcceptedQuoteItem(entities.AcceptedQuoteRecord{QuoteID: "q-1", CreatedAt: earlier})
		b := toAcceptedQuoteItem(entities.AcceptedQuoteRecord{QuoteID: "q-2", CreatedAt: later})

		// RFC3339Nano drops trailing fractional zeros, so ".1Z" sorts after
		// ".15Z" lexicographically even though it is the earlier instant.
		if strings.Compare(a.CreatedAt, b.CreatedAt) <= 0 {
			t.Fatalf("expected inverted string order for %q vs %q", a.CreatedAt, b.CreatedAt)
		}
		if a.CreatedAtUnix >= b.CreatedAtUnix {
			t.Fatalf("epoch order broken: %d >= %d", a.CreatedAtUnix, b.CreatedAtUnix)
		}
	})

	t.Run("cutoff comparison is inclusive at the boundary", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 12, 0, 0, 100000000, time.UTC)
		it := toAcceptedQuoteItem(entities.AcceptedQuoteRecord{QuoteID: "q-1", CreatedAt: at})
		if it.CreatedAtUnix != at.UnixNano() {
			t.Fatalf("expected %d, got %d", at.UnixNano(), it.CreatedAtUnix)
		}
	})
}
