// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "iter"

// IntHashSet is an open-addressed hash set specialized for int32 keys,
// sharing the IntHashMap machinery without the values array. The key
// math.MinInt32 is reserved and Add panics on it.
//
// IntHashSet is single-threaded for mutation.
type IntHashSet struct {
	keys            []int32
	size            int
	resizeThreshold int
	mask            uint32
}

// NewIntHashSet returns an empty set with the minimum capacity of 8.
func NewIntHashSet() *IntHashSet {
	return NewIntHashSetWithCapacity(minContainerCapacity)
}

// NewIntHashSetWithCapacity returns an empty set sized for the given
// capacity hint, rounded up to a power of two of at least 8.
func NewIntHashSetWithCapacity(initialCapacity int) *IntHashSet {
	capacity := int(NextPowerOfTwo(uint32(max(initialCapacity, minContainerCapacity))))
	s := &IntHashSet{
		keys:            make([]int32, capacity),
		resizeThreshold: int(float64(capacity) * containerLoadFactor),
		mask:            uint32(capacity - 1),
	}
	fillMissing(s.keys)
	return s
}

// Len returns the number of keys.
func (s *IntHashSet) Len() int {
	return s.size
}

// IsEmpty reports whether the set holds no keys.
func (s *IntHashSet) IsEmpty() bool {
	return s.size == 0
}

// Cap returns the current slot-array capacity.
func (s *IntHashSet) Cap() int {
	return len(s.keys)
}

func (s *IntHashSet) findIndex(key int32) (uint32, bool) {
	index := hashKey(key) & s.mask
	for {
		switch s.keys[index] {
		case MissingValue:
			return index, false
		case key:
			return index, true
		}
		index = (index + 1) & s.mask
	}
}

// Contains reports whether key is present.
func (s *IntHashSet) Contains(key int32) bool {
	_, found := s.findIndex(key)
	return found
}

// Add inserts key and reports whether the set changed. Add panics on
// the reserved key math.MinInt32.
func (s *IntHashSet) Add(key int32) bool {
	if key == MissingValue {
		panic("reserved missing-value key")
	}
	if s.size >= s.resizeThreshold {
		s.resize()
	}
	index, found := s.findIndex(key)
	if found {
		return false
	}
	s.keys[index] = key
	s.size++
	return true
}

// Remove deletes key and reports whether it was present.
func (s *IntHashSet) Remove(key int32) bool {
	index, found := s.findIndex(key)
	if !found {
		return false
	}
	s.keys[index] = MissingValue
	s.size--
	s.compactChain(index)
	return true
}

func (s *IntHashSet) compactChain(deletedIndex uint32) {
	index := (deletedIndex + 1) & s.mask
	for s.keys[index] != MissingValue {
		key := s.keys[index]
		ideal := hashKey(key) & s.mask
		if shouldMoveEntry(deletedIndex, index, ideal) {
			s.keys[deletedIndex] = key
			s.keys[index] = MissingValue
			deletedIndex = index
		}
		index = (index + 1) & s.mask
	}
}

// Clear empties the set, keeping the current capacity.
func (s *IntHashSet) Clear() {
	fillMissing(s.keys)
	s.size = 0
}

func (s *IntHashSet) resize() {
	oldKeys := s.keys
	capacity := len(oldKeys) * 2
	s.keys = make([]int32, capacity)
	s.resizeThreshold = int(float64(capacity) * containerLoadFactor)
	s.mask = uint32(capacity - 1)
	s.size = 0
	fillMissing(s.keys)
	for _, key := range oldKeys {
		if key != MissingValue {
			s.Add(key)
		}
	}
}

// All iterates the keys in storage order, which is not insertion order
// but is deterministic for an unchanged set.
func (s *IntHashSet) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for _, key := range s.keys {
			if key != MissingValue && !yield(key) {
				return
			}
		}
	}
}
