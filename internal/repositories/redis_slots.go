package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisSlotPrefix = "catalog:slot:"

// redisSlotStore keeps each slot in a hash with "data" and "version" fields
// and checks versions inside a WATCH transaction.
type redisSlotStore struct {
	rdb *redis.Client
}

func NewRedisSlotStore(rdb *redis.Client) SlotStore {
	return &redisSlotStore{rdb: rdb}
}

func (s *redisSlotStore) Get(ctx context.Context, key string) (*Slot, error) {
	fields, err := s.rdb.HGetAll(ctx, redisSlotPrefix+key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, ErrSlotNotFound
	}
	return &Slot{Key: key, Data: []byte(fields["data"]), Version: parseVersion(fields["version"])}, nil
}

// parseVersion reads a stored version. A missing or malformed one counts as
// 0, so the next versioned write repairs the hash.
func parseVersion(raw string) int64 {
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 0 {
		return 0
	}
	return version
}

func (s *redisSlotStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	k := redisSlotPrefix + key
	var version int64

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, k, "version").Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		current := parseVersion(raw)
		if expectedVersion != AnyVersion && current != expectedVersion {
			return ErrStaleWrite
		}

		version = current + 1
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, "data", data, "version", version)
			return nil
		})
		return err
	}

	err := s.rdb.Watch(ctx, txf, k)
	switch {
	case err == nil:
		return version, nil
	case errors.Is(err, ErrStaleWrite), errors.Is(err, redis.TxFailedErr):
		return 0, ErrStaleWrite
	default:
		return 0, fmt.Errorf("failed to write slot %s: %w", key, err)
	}
}

func (s *redisSlotStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisSlotPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
