// Package cache 조회 결과를 일정 시간 보관하는 저장소를 제공합니다.
//
// 가격표는 요청마다 다시 읽히므로, 잦은 조회가 파일을 반복해서 해석하지 않도록
// 직렬화된 결과를 메모리 또는 Redis 에 TTL 동안 보관합니다.
package cache

import (
	"context"
	"time"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
)

const component = "cache.store"

// Store 직렬화된 값을 키 단위로 보관하는 저장소입니다.
type Store interface {
	// Get 키에 해당하는 값을 반환합니다. 값이 없거나 만료되었으면 false 를 반환합니다.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set 값을 ttl 동안 보관합니다. ttl 이 0 이하이면 아무것도 저장하지 않습니다.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Flush 저장소의 모든 값을 삭제합니다.
	Flush(ctx context.Context) error

	Close() error
}

// New 설정에 맞는 저장소를 생성합니다. RedisURL 이 지정되면 Redis, 아니면 메모리 저장소를 사용합니다.
func New(cfg config.CacheConfig) (Store, error) {
	if cfg.RedisURL != "" {
		s, err := NewRedisStore(cfg.RedisURL, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return NewMemoryStore(cfg.MaxEntries), nil
}
