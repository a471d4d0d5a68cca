package interfaces

import (
	"context"
	"ofair/internal/domain/entities"
)

// IReferralRepository persists revealed professional contacts.

type IReferralRepository interface {
	Save(ctx context.Context, ref entities.Referral) (entities.Referral, error)
}
