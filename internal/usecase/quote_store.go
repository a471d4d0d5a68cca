package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrInvalidRequest  = errors.New("invalid request id")
	ErrRequestNotFound = errors.New("request not found")
)

const (
	mediaURLExpiry = 1 * time.Hour
	// reconcileDelay is how long after a lifecycle write the store re-fetches
	// the request's quotes, picking up sibling updates that were still in
	// flight when the operation returned.
	reconcileDelay = 2 * time.Second

	refreshTimeout = 10 * time.Second
)

// IQuoteStore is the read surface handlers consume.

type IQuoteStore interface {
	Refresh(ctx context.Context, requestID string) ([]entities.Quote, error)
	Get(requestID string) []entities.Quote
}

// QuoteStore holds the authoritative local view of quotes for requests
// currently of interest and reconciles it with the backing store on demand.
//
// Refresh repairs a known inconsistency: a quote row whose status lost the
// acceptance while the accepted-quote side record still exists. The side
// record wins and the quote row is corrected (write-back best effort).

type QuoteStore struct {
	quoteRepo    interfaces.IQuoteRepository
	acceptedRepo interfaces.IAcceptedQuoteRepository
	media        interfaces.IMediaStore // optional

	mu     sync.RWMutex
	quotes map[string][]entities.Quote

	// afterFunc is swapped out in tests to keep scheduled refreshes from
	// firing against already-finished mock controllers.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

var _ IQuoteStore = (*QuoteStore)(nil)

func NewQuoteStore(quoteRepo interfaces.IQuoteRepository, acceptedRepo interfaces.IAcceptedQuoteRepository, media interfaces.IMediaStore) *QuoteStore {
	return &QuoteStore{
		quoteRepo:    quoteRepo,
		acceptedRepo: acceptedRepo,
		media:        media,
		quotes:       make(map[string][]entities.Quote),
		afterFunc:    time.AfterFunc,
	}
}

// Refresh fetches all quotes for requestID, reconciles them against the
// accepted-quote record and merges the result into local state, preserving
// entries belonging to other requests. On data-access error the local list
// for requestID falls back to empty and the error is surfaced to the caller.
func (s *QuoteStore) Refresh(ctx context.Context, requestID string) ([]entities.Quote, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequest
	}

	quotes, err := s.quoteRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		log.Printf("[quotes][store] refresh failed request_id=%s err=%v", requestID, err)
		s.mu.Lock()
		s.quotes[requestID] = nil
		s.mu.Unlock()
		return nil, err
	}

	rec, err := s.acceptedRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		// Reconciliation is best effort; the fetched quotes are still usable.
		log.Printf("[quotes][store] accepted-record fetch failed request_id=%s err=%v", requestID, err)
	} else if rec.QuoteID != "" {
		for i := range quotes {
			if quotes[i].ID == rec.QuoteID && quotes[i].Status != entities.QuoteStatusAccepted {
				log.Printf("[quotes][store] repairing stale quote status quote_id=%s request_id=%s", rec.QuoteID, requestID)
				quotes[i].Status = entities.QuoteStatusAccepted
				if _, err := s.quoteRepo.UpdateStatus(ctx, rec.QuoteID, entities.QuoteStatusAccepted); err != nil {
					log.Printf("[quotes][store] repair write-back failed quote_id=%s err=%v", rec.QuoteID, err)
				}
			}
		}
	}

	s.resolveMediaURLs(ctx, quotes)

	s.mu.Lock()
	s.quotes[requestID] = quotes
	s.mu.Unlock()

	return copyQuotes(quotes), nil
}

// Get returns the locally held quotes for a request. It never blocks on the
// backing store.
func (s *QuoteStore) Get(requestID string) []entities.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyQuotes(s.quotes[requestID])
}

// Lookup resolves a quote by id, consulting local state first and falling
// back to the backing store.
func (s *QuoteStore) Lookup(ctx context.Context, quoteID string) (entities.Quote, error) {
	s.mu.RLock()
	for _, quotes := range s.quotes {
		for _, q := range quotes {
			if q.ID == quoteID {
				s.mu.RUnlock()
				return q, nil
			}
		}
	}
	s.mu.RUnlock()

	q, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// ApplyAcceptance mirrors a completed acceptance into local state: the target
// becomes accepted, every sibling becomes rejected.
func (s *QuoteStore) ApplyAcceptance(requestID, quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes[requestID] {
		if s.quotes[requestID][i].ID == quoteID {
			s.quotes[requestID][i].Status = entities.QuoteStatusAccepted
		} else {
			s.quotes[requestID][i].Status = entities.QuoteStatusRejected
		}
	}
}

// ApplyCancellation mirrors a cancelled acceptance into local state: the
// target becomes rejected and the remaining candidates return to pending.
func (s *QuoteStore) ApplyCancellation(requestID, quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes[requestID] {
		switch {
		case s.quotes[requestID][i].ID == quoteID:
			s.quotes[requestID][i].Status = entities.QuoteStatusRejected
		case s.quotes[requestID][i].Status != entities.QuoteStatusAccepted:
			s.quotes[requestID][i].Status = entities.QuoteStatusPending
		}
	}
}

// SetLocalStatus updates one quote's status in local state only.
func (s *QuoteStore) SetLocalStatus(requestID, quoteID string, status entities.QuoteStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes[requestID] {
		if s.quotes[requestID][i].ID == quoteID {
			s.quotes[requestID][i].Status = status
			return
		}
	}
}

// ScheduleRefresh re-fetches the request's quotes after delay to reconcile
// writes that were still propagating when the caller finished.
func (s *QuoteStore) ScheduleRefresh(requestID string, delay time.Duration) {
	s.afterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := s.Refresh(ctx, requestID); err != nil {
			log.Printf("[quotes][store] scheduled refresh failed request_id=%s err=%v", requestID, err)
		}
	})
}

func (s *QuoteStore) resolveMediaURLs(ctx context.Context, quotes []entities.Quote) {
	for i := range quotes {
		if len(quotes[i].MediaKeys) == 0 {
			continue
		}
		urls := make([]string, 0, len(quotes[i].MediaKeys))
		for _, key := range quotes[i].MediaKeys {
			if strings.Contains(key, "://") || s.media == nil {
				// Already a URL, or no media store wired: pass through.
				urls = append(urls, key)
				continue
			}
			u, err := s.media.PresignGet(ctx, key, mediaURLExpiry)
			if err != nil {
				log.Printf("[quotes][store] presign failed key=%s err=%v", key, err)
				urls = append(urls, key)
				continue
			}
			urls = append(urls, u)
		}
		quotes[i].MediaURLs = urls
	}
}

func copyQuotes(quotes []entities.Quote) []entities.Quote {
	out := make([]entities.Quote, len(quotes))
	copy(out, quotes)
	return out
}
