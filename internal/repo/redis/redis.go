// Package redis is the REDIS_URL-backed ResultStore: the last Result is a
// JSON blob under the fixed key.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/isawsback/isawsback/internal/domain"
	"github.com/isawsback/isawsback/internal/repo"
)

var _ repo.ResultStore = (*Store)(nil)

type Store struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(ctx context.Context, url string, log *zap.Logger) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 5 * time.Second
	opts.WriteTimeout = 5 * time.Second

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{rdb: rdb, log: log}, nil
}

func (s *Store) Close() error { return s.rdb.Close() }

func (s *Store) Save(ctx context.Context, r *domain.Result) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := s.rdb.Set(ctx, repo.ResultKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("set result: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) (*domain.Result, error) {
	payload, err := s.rdb.Get(ctx, repo.ResultKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	var r domain.Result
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		s.log.Warn("last_result_corrupt", zap.Error(err))
		return nil, nil
	}
	return &r, nil
}
