package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestInput = errors.New("invalid request input")
	ErrRequestNotDeletable = errors.New("request cannot be deleted while waiting for rating")
)

// RequestSummary is a request plus its derived quote count.

type RequestSummary struct {
	entities.Request
	QuotesCount int `json:"quotes_count"`
}

// IRequestUseCase exposes the service-request CRUD around the lifecycle core.

type IRequestUseCase interface {
	Create(ctx context.Context, userID, title, description, location string) (entities.Request, error)
	GetByID(ctx context.Context, userID, id string) (RequestSummary, error)
	ListByUser(ctx context.Context, userID string) ([]RequestSummary, error)
	Delete(ctx context.Context, userID, id string) error
}

type RequestUseCase struct {
	repo      interfaces.IRequestRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository, quoteRepo interfaces.IQuoteRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *RequestUseCase) Create(ctx context.Context, userID, title, description, location string) (entities.Request, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}

	now := time.Now().UTC()
	r := entities.Request{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Location:    strings.TrimSpace(location),
		Status:      entities.RequestStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, r)
}

func (u *RequestUseCase) GetByID(ctx context.Context, userID, id string) (RequestSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RequestSummary{}, ErrInvalidRequest
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return RequestSummary{}, err
	}
	if r.ID == "" || r.UserID != userID {
		return RequestSummary{}, ErrRequestNotFound
	}

	count, err := u.quoteRepo.CountByRequestID(ctx, id)
	if err != nil {
		// The count is derived convenience data; the request itself stands.
		log.Printf("[requests][usecase] quote count failed request_id=%s err=%v", id, err)
	}
	return RequestSummary{Request: r, QuotesCount: count}, nil
}

func (u *RequestUseCase) ListByUser(ctx context.Context, userID string) ([]RequestSummary, error) {
	reqs, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]RequestSummary, 0, len(reqs))
	for _, r := range reqs {
		count, err := u.quoteRepo.CountByRequestID(ctx, r.ID)
		if err != nil {
			log.Printf("[requests][usecase] quote count failed request_id=%s err=%v", r.ID, err)
		}
		out = append(out, RequestSummary{Request: r, QuotesCount: count})
	}
	return out, nil
}

func (u *RequestUseCase) Delete(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequest
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.ID == "" || r.UserID != userID {
		return ErrRequestNotFound
	}
	if r.Status == entities.RequestStatusWaitingForRating {
		return ErrRequestNotDeletable
	}
	return u.repo.Delete(ctx, id)
}
