package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries 메모리 저장소가 보관하는 최대 항목 수의 기본값
const DefaultMaxEntries = 10000

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore 프로세스 메모리에 값을 보관하는 Store 구현체입니다.
//
// 최대 maxEntries 개까지 보관하며, 가득 차면 가장 오래 사용되지 않은 값부터 밀려납니다.
// 만료된 값은 조회 시점에 제거되고, 조회되지 않더라도 새 값에 밀려 사라집니다.
type MemoryStore struct {
	entries *lru.Cache[string, memoryEntry]

	now func() time.Time
}

// NewMemoryStore 비어 있는 메모리 저장소를 생성합니다. maxEntries 가 0 이하이면 DefaultMaxEntries 를 사용합니다.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	// 크기가 양수이면 lru.New 는 실패하지 않는다.
	entries, _ := lru.New[string, memoryEntry](maxEntries)

	return &MemoryStore{
		entries: entries,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		// 다른 고루틴이 그 사이에 새 값을 넣었을 수 있으므로 다시 확인한다.
		if cur, ok := s.entries.Peek(key); ok && !s.now().Before(cur.expiresAt) {
			s.entries.Remove(key)
		}
		return nil, false, nil
	}

	return e.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	v := make([]byte, len(value))
	copy(v, value)

	s.entries.Add(key, memoryEntry{value: v, expiresAt: s.now().Add(ttl)})

	return nil
}

func (s *MemoryStore) Flush(_ context.Context) error {
	s.entries.Purge()
	return nil
}

// Len 보관 중인 값의 개수를 반환합니다. 아직 제거되지 않은 만료 값도 포함됩니다.
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}

func (s *MemoryStore) Close() error { return nil }
