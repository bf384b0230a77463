package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

// pingTimeout Redis 연결 확인 시 최대 대기 시간
const pingTimeout = 5 * time.Second

// flushScanCount Flush 시 SCAN 한 번에 가져올 키 개수
const flushScanCount = 100

// RedisStore Redis 에 값을 보관하는 Store 구현체입니다.
// 모든 키에 prefix 를 붙이며, Flush 는 prefix 로 시작하는 키만 삭제합니다.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore Redis URL 로 클라이언트를 만들고 연결을 확인합니다.
func NewRedisStore(rawURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "Redis URL 형식이 올바르지 않습니다")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "Redis 서버에 연결할 수 없습니다 (addr=%s)", opts.Addr)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"addr":       opts.Addr,
		"db":         opts.DB,
		"password":   strutil.Mask(opts.Password),
		"key_prefix": prefix,
	}).Info("Redis 캐시 저장소에 연결되었습니다")

	return newRedisStoreWithClient(client, prefix), nil
}

func newRedisStoreWithClient(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.Unavailable, "Redis 조회에 실패했습니다")
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Redis 저장에 실패했습니다")
	}
	return nil
}

func (s *RedisStore) Flush(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", flushScanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Redis 키 목록을 가져오지 못했습니다")
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Redis 키 삭제에 실패했습니다")
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
