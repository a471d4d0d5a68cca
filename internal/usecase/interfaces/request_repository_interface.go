package interfaces

import (
	"context"
	"ofair/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for Request.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Request, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error)
	Delete(ctx context.Context, id string) error
}
