// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"iter"
	"math"
)

// MissingValue is the reserved key sentinel marking an empty slot in
// IntHashMap and IntHashSet. It cannot be used as a key.
const MissingValue int32 = math.MinInt32

const (
	minContainerCapacity = 8
	containerLoadFactor  = 0.67
)

// IntHashMap is an open-addressed hash map specialized for int32 keys,
// using linear probing and backward-shift deletion. Capacity is always
// a power of two, doubling when size reaches 0.67 of it; the map never
// shrinks. The key math.MinInt32 is reserved and Put panics on it.
//
// IntHashMap is single-threaded for mutation. Multiple concurrent
// readers on an unmutated map are safe.
type IntHashMap[V any] struct {
	keys            []int32
	values          []V
	size            int
	resizeThreshold int
	mask            uint32
}

// NewIntHashMap returns an empty map with the minimum capacity of 8.
func NewIntHashMap[V any]() *IntHashMap[V] {
	return NewIntHashMapWithCapacity[V](minContainerCapacity)
}

// NewIntHashMapWithCapacity returns an empty map sized for the given
// capacity hint, rounded up to a power of two of at least 8.
func NewIntHashMapWithCapacity[V any](initialCapacity int) *IntHashMap[V] {
	capacity := int(NextPowerOfTwo(uint32(max(initialCapacity, minContainerCapacity))))
	m := &IntHashMap[V]{
		keys:            make([]int32, capacity),
		values:          make([]V, capacity),
		resizeThreshold: int(float64(capacity) * containerLoadFactor),
		mask:            uint32(capacity - 1),
	}
	fillMissing(m.keys)
	return m
}

func fillMissing(keys []int32) {
	for i := range keys {
		keys[i] = MissingValue
	}
}

// hashKey computes the ideal-slot hash for a key. The mix step spreads
// sequential keys, the dominant workload, across the table.
func hashKey(key int32) uint32 {
	return MixHash(FastIntHash(key))
}

// Len returns the number of entries.
func (m *IntHashMap[V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *IntHashMap[V]) IsEmpty() bool {
	return m.size == 0
}

// Cap returns the current slot-array capacity.
func (m *IntHashMap[V]) Cap() int {
	return len(m.keys)
}

// findIndex walks the probe chain from the key's ideal slot, stopping
// at the key or at the first empty slot.
func (m *IntHashMap[V]) findIndex(key int32) (uint32, bool) {
	index := hashKey(key) & m.mask
	for {
		switch m.keys[index] {
		case MissingValue:
			return index, false
		case key:
			return index, true
		}
		index = (index + 1) & m.mask
	}
}

// Get returns the value stored under key and whether it was present.
func (m *IntHashMap[V]) Get(key int32) (V, bool) {
	if index, found := m.findIndex(key); found {
		return m.values[index], true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *IntHashMap[V]) ContainsKey(key int32) bool {
	_, found := m.findIndex(key)
	return found
}

// Put stores value under key, returning the previous value and whether
// one was replaced. Put panics on the reserved key math.MinInt32.
func (m *IntHashMap[V]) Put(key int32, value V) (V, bool) {
	if key == MissingValue {
		panic("reserved missing-value key")
	}
	if m.size >= m.resizeThreshold {
		m.resize()
	}
	index, found := m.findIndex(key)
	if found {
		previous := m.values[index]
		m.values[index] = value
		return previous, true
	}
	m.keys[index] = key
	m.values[index] = value
	m.size++
	var zero V
	return zero, false
}

// Remove deletes key, returning the removed value and whether it was
// present. The probe chain is compacted so later lookups never cross a
// stale empty slot.
func (m *IntHashMap[V]) Remove(key int32) (V, bool) {
	index, found := m.findIndex(key)
	if !found {
		var zero V
		return zero, false
	}
	removed := m.values[index]
	var zero V
	m.values[index] = zero
	m.keys[index] = MissingValue
	m.size--
	m.compactChain(index)
	return removed, true
}

// compactChain shifts displaced entries back over the hole left at
// deletedIndex, preserving the invariant that probing from any key's
// ideal slot reaches the key without crossing an empty slot.
func (m *IntHashMap[V]) compactChain(deletedIndex uint32) {
	index := (deletedIndex + 1) & m.mask
	for m.keys[index] != MissingValue {
		key := m.keys[index]
		ideal := hashKey(key) & m.mask
		if shouldMoveEntry(deletedIndex, index, ideal) {
			m.keys[deletedIndex] = key
			m.values[deletedIndex] = m.values[index]
			m.keys[index] = MissingValue
			var zero V
			m.values[index] = zero
			deletedIndex = index
		}
		index = (index + 1) & m.mask
	}
}

// shouldMoveEntry is the circular-arc containment test: an entry at
// current belongs in the hole at deleted iff its ideal slot lies
// outside the arc (deleted, current].
func shouldMoveEntry(deleted, current, ideal uint32) bool {
	if deleted < current {
		return ideal <= deleted || ideal > current
	}
	return ideal <= deleted && ideal > current
}

// Clear empties the map, keeping the current capacity.
func (m *IntHashMap[V]) Clear() {
	fillMissing(m.keys)
	var zero V
	for i := range m.values {
		m.values[i] = zero
	}
	m.size = 0
}

// resize doubles the capacity and reinserts every live entry.
// The entry count is unchanged afterwards.
func (m *IntHashMap[V]) resize() {
	oldKeys, oldValues := m.keys, m.values
	capacity := len(oldKeys) * 2
	m.keys = make([]int32, capacity)
	m.values = make([]V, capacity)
	m.resizeThreshold = int(float64(capacity) * containerLoadFactor)
	m.mask = uint32(capacity - 1)
	m.size = 0
	fillMissing(m.keys)
	for i, key := range oldKeys {
		if key != MissingValue {
			m.Put(key, oldValues[i])
		}
	}
}

// All iterates the entries in storage order, which is not insertion
// order but is deterministic for an unchanged map. Mutating the map
// during iteration is unspecified.
func (m *IntHashMap[V]) All() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		for i, key := range m.keys {
			if key != MissingValue && !yield(key, m.values[i]) {
				return
			}
		}
	}
}

// Keys iterates the keys in storage order.
func (m *IntHashMap[V]) Keys() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for _, key := range m.keys {
			if key != MissingValue && !yield(key) {
				return
			}
		}
	}
}

// Values iterates the values in storage order.
func (m *IntHashMap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i, key := range m.keys {
			if key != MissingValue && !yield(m.values[i]) {
				return
			}
		}
	}
}
