package interfaces

import (
	"context"
	"time"
)

// IMediaStore resolves object-store keys for quote media into URLs a browser
// can fetch. Uploads happen on the professionals side; this service only
// presigns reads.

type IMediaStore interface {
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
