package formstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps each calculator's form state under its own key.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis and checks the connection with a PING.
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		opts.Addr = constants.DefaultRedisAddr
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = constants.DefaultStoreKeyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return &RedisStore{client: client, prefix: opts.KeyPrefix}, nil
}

func (s *RedisStore) key(kind fees.Kind) string {
	return s.prefix + ":" + string(kind)
}

func (s *RedisStore) Load(ctx context.Context, kind fees.Kind) (FormState, error) {
	if err := checkKind(kind); err != nil {
		return FormState{}, err
	}

	payload, err := s.client.Get(ctx, s.key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return FormState{}, ErrNotFound
	}
	if err != nil {
		return FormState{}, fmt.Errorf("failed to load form state: %w", err)
	}
	return decode(payload)
}

func (s *RedisStore) Save(ctx context.Context, state FormState) (FormState, error) {
	state, payload, err := prepare(state, now())
	if err != nil {
		return FormState{}, err
	}
	if err := s.client.Set(ctx, s.key(state.Calculator), payload, 0).Err(); err != nil {
		return FormState{}, fmt.Errorf("failed to save form state: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Delete(ctx context.Context, kind fees.Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(kind)).Err(); err != nil {
		return fmt.Errorf("failed to delete form state: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
