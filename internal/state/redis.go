package state

import (
	"context"
	"fmt"

	redisclient "github.com/vergerducoin/verger-clients/pkg/redis"
)

// RedisStore keeps state documents on a shared register state server, so
// a kiosk fleet can hand a cart between terminals.
type RedisStore struct {
	client   *redisclient.Client
	register string
}

// NewRedisStore scopes documents under the given register identifier.
func NewRedisStore(client *redisclient.Client, register string) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client, register: register}, nil
}

func (s *RedisStore) Load(ctx context.Context, name string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.client.StateKey(s.register, name))
	if redisclient.IsNil(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading state document %q: %w", name, err)
	}
	return []byte(val), nil
}

func (s *RedisStore) Save(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, s.client.StateKey(s.register, name), string(data), 0); err != nil {
		return fmt.Errorf("saving state document %q: %w", name, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.client.StateKey(s.register, name)); err != nil {
		return fmt.Errorf("deleting state document %q: %w", name, err)
	}
	return nil
}
