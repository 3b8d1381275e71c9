package memory

import (
	"context"
	"time"

	"novamind-be/internal/entity"
	"novamind-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type DocumentRepository struct {
	cache *cache.Cache
}

var _ contract.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository expires documents ttl after their last upload and
// purges expired entries every ttl/6 (at least a minute).
func NewDocumentRepository(ttl time.Duration) *DocumentRepository {
	ttl = contract.SessionTTL(ttl)
	cleanup := ttl / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &DocumentRepository{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *DocumentRepository) Save(_ context.Context, doc *entity.Document) error {
	stored := *doc
	r.cache.Set(doc.SessionId, &stored, cache.DefaultExpiration)
	return nil
}

func (r *DocumentRepository) FindBySession(_ context.Context, sessionId string) (*entity.Document, error) {
	if x, found := r.cache.Get(sessionId); found {
		doc := *x.(*entity.Document)
		return &doc, nil
	}
	return nil, nil
}

func (r *DocumentRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}
