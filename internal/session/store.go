package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devanshuguptaa/Stylo/internal/crypto"
)

// ErrNotFound is returned when no live session exists for an id.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "stylo:session:"

// Record is the serialized state kept server-side per session. It holds only
// the reference needed to rehydrate the user on each request.
type Record struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps sessions in Redis with a store-side TTL. Expired entries are
// garbage-collected by Redis itself.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create persists a new session for userID and returns its opaque id.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	id, err := crypto.NewSessionID()
	if err != nil {
		return "", err
	}
	record := Record{UserID: userID, CreatedAt: time.Now().UTC()}
	payload, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, ErrNotFound
	}
	return record, nil
}

// Delete is idempotent: removing a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
