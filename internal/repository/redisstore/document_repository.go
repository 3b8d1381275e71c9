package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"novamind-be/internal/entity"
	"novamind-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "novamind:document:"

// DocumentRepository shares session documents between server instances.
type DocumentRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.DocumentRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(ctx context.Context, url string, ttl time.Duration) (*DocumentRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newDocumentRepository(client, ttl), nil
}

func newDocumentRepository(client *redis.Client, ttl time.Duration) *DocumentRepository {
	return &DocumentRepository{client: client, ttl: contract.SessionTTL(ttl)}
}

func key(sessionId string) string {
	return keyPrefix + sessionId
}

func (r *DocumentRepository) Save(ctx context.Context, doc *entity.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := r.client.Set(ctx, key(doc.SessionId), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) FindBySession(ctx context.Context, sessionId string) (*entity.Document, error) {
	data, err := r.client.Get(ctx, key(sessionId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, sessionId string) error {
	if err := r.client.Del(ctx, key(sessionId)).Err(); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Close() error {
	return r.client.Close()
}
