package response

import (
	"testing"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:               "q-1",
		RequestID:        "req-1",
		ProfessionalID:   "pro-1",
		ProfessionalName: "Avi",
		Phone:            "050-1234567",
		Profession:       "plumber",
		Price:            350,
		Description:      "Replace the trap",
		EstimatedTime:    "2 hours",
		MediaURLs:        []string{"https://cdn.local/a.jpg"},
		Status:           entities.QuoteStatusPending,
		CreatedAt:        now,
	}

	got := FromQuote(q)
	if got.ID != "q-1" || got.RequestID != "req-1" || got.Status != "pending" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.Price != 350 || got.ProfessionalName != "Avi" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if len(got.MediaURLs) != 1 {
		t.Fatalf("expected media urls to carry over, got %v", got.MediaURLs)
	}
}

func TestFromAcceptResult(t *testing.T) {
	res := usecase.AcceptResult{
		Quote:           entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted},
		AlreadyAccepted: true,
	}

	got := FromAcceptResult(res)
	if !got.AlreadyAccepted {
		t.Fatal("expected AlreadyAccepted")
	}
	if got.RedirectURL != "" {
		t.Fatalf("expected empty redirect, got %s", got.RedirectURL)
	}
	if got.Quote.Status != "accepted" {
		t.Fatalf("unexpected status: %s", got.Quote.Status)
	}
}

func TestFromRequestSummary(t *testing.T) {
	s := usecase.RequestSummary{
		Request:     entities.Request{ID: "req-1", Title: "Fix leaking sink", Status: entities.RequestStatusActive},
		QuotesCount: 4,
	}

	got := FromRequestSummary(s)
	if got.ID != "req-1" || got.QuotesCount != 4 || got.Status != "active" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
