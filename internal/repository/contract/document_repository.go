package contract

import (
	"context"
	"time"

	"novamind-be/internal/entity"
)

// DocumentRepository keeps one document per session. Implementations must be
// safe for concurrent use.
type DocumentRepository interface {
	Save(ctx context.Context, doc *entity.Document) error
	// FindBySession returns (nil, nil) when the session has no document.
	FindBySession(ctx context.Context, sessionId string) (*entity.Document, error)
	Delete(ctx context.Context, sessionId string) error
}

// DefaultSessionTTL applies when the configured TTL is zero or negative.
const DefaultSessionTTL = time.Hour

// SessionTTL is the expiry every store must use for a configured ttl.
func SessionTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultSessionTTL
	}
	return ttl
}
