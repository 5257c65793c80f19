package tokenstore

import (
	"context"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Keys are namespaced so several tools sharing one Redis do not collide.
const redisKeyPrefix = "nivlek:store:"

type redisTokenStore struct {
	Client *redis.Client
	Log    *zap.Logger
}

// NewRedisTokenStore is the shared-workstation alternative to the SQLite
// store. Entries carry no expiration, matching the SQLite behavior.
func NewRedisTokenStore(client *redis.Client, logger *zap.Logger) contracts.TokenStore {
	return &redisTokenStore{Client: client, Log: logger}
}

func (s *redisTokenStore) Set(ctx context.Context, key, value string) error {
	err := s.Client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
	if err != nil {
		s.Log.Error("redisTokenStore.Set failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStoreSet(err)
	}
	return nil
}

func (s *redisTokenStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.Client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		s.Log.Error("redisTokenStore.Get failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return "", exceptions.ErrStoreGet(err)
	}
	return value, nil
}

func (s *redisTokenStore) Remove(ctx context.Context, key string) error {
	err := s.Client.Del(ctx, redisKeyPrefix+key).Err()
	if err != nil {
		s.Log.Error("redisTokenStore.Remove failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStoreRemove(err)
	}
	return nil
}
