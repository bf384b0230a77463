package catalog

// orderedMap 삽입 순서를 유지하는 맵. 그룹 출력 순서가 해시 순회 순서에 좌우되지 않도록 사용한다.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

func (m *orderedMap[K, V]) get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *orderedMap[K, V]) set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *orderedMap[K, V]) len() int { return len(m.keys) }

// each 삽입 순서대로 fn 을 호출한다.
func (m *orderedMap[K, V]) each(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
