package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"vayuhu/models"
)

const draftKeyPrefix = "draft:"

// DraftStore holds in-progress booking drafts between wizard calls.
type DraftStore interface {
	Get(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Set(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, draftID string) error
}

// RedisDraftStore keeps drafts in Redis with a TTL, so an abandoned wizard
// cleans itself up.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+draftID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, draft *models.BookingDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKeyPrefix+draft.DraftID, b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, draftID string) error {
	return s.client.Del(ctx, draftKeyPrefix+draftID).Err()
}
