// Package orderedmap 提供保持插入顺序的泛型 Map
package orderedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
)

// Entry 单个键值对条目
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap 有序 Map,保证按键的首次插入顺序遍历
// 查找按相等比较线性扫描,不维护任何索引结构
// 非并发安全,需要并发访问时由调用方自行同步
type OrderedMap[K comparable, V any] struct {
	entries []Entry[K, V]
}

// New 创建空的有序 Map
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// WithCapacity 创建空的有序 Map,并预留至少 n 个条目的容量
// 仅为性能提示,不影响行为
func WithCapacity[K comparable, V any](n int) *OrderedMap[K, V] {
	if n < 0 {
		n = 0
	}
	return &OrderedMap[K, V]{
		entries: make([]Entry[K, V], 0, n),
	}
}

// FromPairs 按给定顺序逐个插入构建有序 Map
// 重复键保留首次出现的位置,取最后一次出现的值
func FromPairs[K comparable, V any](pairs ...Entry[K, V]) *OrderedMap[K, V] {
	m := WithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// find 返回键所在的位置,不存在时返回 -1
func (m *OrderedMap[K, V]) find(key K) int {
	for i, e := range m.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get 获取键对应的值,第二个返回值表示键是否存在
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i := m.find(key); i >= 0 {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Has 检查键是否存在
func (m *OrderedMap[K, V]) Has(key K) bool {
	return m.find(key) >= 0
}

// Set 插入或更新键值对
// 键已存在时原地覆盖值,位置不变;否则追加到末尾
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if i := m.find(key); i >= 0 {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Len 返回条目数量
func (m *OrderedMap[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty 返回 Map 是否为空
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// All 返回按插入顺序遍历所有键值对的迭代器
// 遍历期间不得修改 Map
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys 返回所有键(按插入顺序)
func (m *OrderedMap[K, V]) Keys() []K {
	return lo.Map(m.entries, func(e Entry[K, V], _ int) K {
		return e.Key
	})
}

// Values 返回所有值(按插入顺序)
func (m *OrderedMap[K, V]) Values() []V {
	return lo.Map(m.entries, func(e Entry[K, V], _ int) V {
		return e.Value
	})
}

// Clone 复制整个 Map,副本与原 Map 互相独立
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := WithCapacity[K, V](len(m.entries))
	c.entries = append(c.entries, m.entries...)
	return c
}

// String 按插入顺序渲染全部条目,仅用于调试输出
func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", e.Key, e.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
