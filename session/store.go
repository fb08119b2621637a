// Package session keeps per-browser-session cart state. The cart is a JSON
// blob under one key per session, so a two-tab race is last-write-wins at
// whole-cart granularity.
package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sank4512/plutocollection.in/models"
)

// Carts live as long as the browser session is expected to; an idle cart
// eventually expires server-side.
const cartTTL = 7 * 24 * time.Hour

// CartStore reads and writes one cart per session id.
type CartStore interface {
	Cart(ctx context.Context, sessionID string) (models.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart models.Cart) error
	ClearCart(ctx context.Context, sessionID string) error
}

// RedisStore backs carts with Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection. A nil store
// and an error come back if Redis is unreachable, so callers can fall back
// to the in-memory store.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// Client exposes the underlying connection for collaborators that share it,
// such as the login rate limiter.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Cart(ctx context.Context, sessionID string) (models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// A payload this process cannot read is useless; start the
		// session over rather than wedging every cart request.
		log.Printf("⚠️ Discarding unreadable cart for session %s: %v", sessionID, err)
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

func (s *RedisStore) ClearCart(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// MemoryStore is the fallback when Redis is down: carts survive for the
// process lifetime only.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (s *MemoryStore) Cart(_ context.Context, sessionID string) (models.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return models.Cart{}, nil
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *MemoryStore) SaveCart(_ context.Context, sessionID string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
