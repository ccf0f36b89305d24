// Package redisstate backs the sidecar StateStore contract with Redis.
// Each record is a hash of {data, version}; version is a monotonically
// increasing integer returned to callers as the etag, and a Lua script
// performs the compare-and-swap so concurrent writers get first-writer-wins.
package redisstate

import (
	"context"
	"fmt"
	"strconv"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// casScript atomically checks the stored version against the caller's etag
// and, on match, writes the new data with an incremented version. An etag of
// "0" asserts the key must not exist. Returns the new version, or 0 on
// conflict.
var casScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current == false then
    if ARGV[1] ~= '0' then
        return 0
    end
    redis.call('HSET', KEYS[1], 'data', ARGV[2], 'version', 1)
    return 1
end
if current ~= ARGV[1] then
    return 0
end
local next = tonumber(current) + 1
redis.call('HSET', KEYS[1], 'data', ARGV[2], 'version', next)
return next
`)

type Store struct {
	client *redis.Client
	// name is the logical state store name, used as the key prefix so that
	// make-line and loyalty records never collide on a shared Redis.
	name string
}

func New(cfg config.RedisConfig, name string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	return &Store{client: client, name: name}, nil
}

// NewWithClient is used by tests that provision their own client.
func NewWithClient(client *redis.Client, name string) *Store {
	return &Store{client: client, name: name}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, string, error) {
	fields, err := s.client.HMGet(ctx, s.redisKey(key), "data", "version").Result()
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to read state")
	}

	if fields[0] == nil || fields[1] == nil {
		return nil, "", nil
	}

	data, ok := fields[0].(string)
	if !ok {
		return nil, "", errs.New("state record has malformed data field")
	}
	version, ok := fields[1].(string)
	if !ok {
		return nil, "", errs.New("state record has malformed version field")
	}

	return []byte(data), version, nil
}

func (s *Store) TrySet(ctx context.Context, key string, value []byte, etag string) (bool, error) {
	if etag == "" {
		etag = "0"
	}
	if _, err := strconv.ParseInt(etag, 10, 64); err != nil {
		return false, errs.New("invalid etag: " + etag)
	}

	next, err := casScript.Run(ctx, s.client, []string{s.redisKey(key)}, etag, string(value)).Int64()
	if err != nil {
		return false, errs.Wrap(err, "failed to write state")
	}

	return next != 0, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) redisKey(key string) string {
	return fmt.Sprintf("%s||%s", s.name, key)
}
