// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"testing"

	"code.hybscloud.com/membuf"
)

func TestIntHashSet_BasicOperations(t *testing.T) {
	s := membuf.NewIntHashSet()

	if s.Len() != 0 || !s.IsEmpty() {
		t.Fatalf("new set: Len() = %d, IsEmpty() = %v", s.Len(), s.IsEmpty())
	}

	if !s.Add(1) || !s.Add(2) {
		t.Error("Add of fresh keys reported no change")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(1) || !s.Contains(2) || s.Contains(3) {
		t.Error("Contains results wrong after adds")
	}

	if s.Add(1) {
		t.Error("Add of duplicate key reported a change")
	}
	if s.Len() != 2 {
		t.Errorf("Len() after duplicate Add = %d, want 2", s.Len())
	}

	if !s.Remove(1) {
		t.Error("Remove of present key reported no change")
	}
	if s.Remove(1) {
		t.Error("Remove of absent key reported a change")
	}
	if s.Len() != 1 || s.Contains(1) {
		t.Errorf("after removal: Len() = %d, Contains(1) = %v", s.Len(), s.Contains(1))
	}
}

func TestIntHashSet_GrowthAndChains(t *testing.T) {
	s := membuf.NewIntHashSetWithCapacity(8)
	for i := int32(0); i < 200; i++ {
		s.Add(i * 3)
		if s.Len() != int(i)+1 {
			t.Fatalf("Len() = %d during growth, want %d", s.Len(), i+1)
		}
	}
	for i := int32(0); i < 200; i++ {
		if !s.Contains(i * 3) {
			t.Fatalf("Contains(%d) = false after growth", i*3)
		}
	}
	if s.Contains(1) {
		t.Error("Contains(1) = true for a never-added key")
	}

	for i := int32(0); i < 200; i += 2 {
		if !s.Remove(i * 3) {
			t.Fatalf("Remove(%d) missed", i*3)
		}
	}
	for i := int32(0); i < 200; i++ {
		want := i%2 == 1
		if s.Contains(i*3) != want {
			t.Fatalf("Contains(%d) = %v after removals, want %v", i*3, !want, want)
		}
	}
}

func TestIntHashSet_ClearAndIterate(t *testing.T) {
	s := membuf.NewIntHashSet()
	for i := int32(1); i <= 3; i++ {
		s.Add(i)
	}

	seen := make(map[int32]bool)
	for k := range s.All() {
		seen[k] = true
	}
	if len(seen) != 3 || !seen[1] || !seen[2] || !seen[3] {
		t.Errorf("All yielded %v, want {1 2 3}", seen)
	}

	capacity := s.Cap()
	s.Clear()
	if s.Len() != 0 || s.Cap() != capacity {
		t.Errorf("after Clear: Len() = %d, Cap() = %d, want 0, %d", s.Len(), s.Cap(), capacity)
	}
}

func TestIntHashSet_ReservedKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add of the reserved sentinel key did not panic")
		}
	}()
	membuf.NewIntHashSet().Add(membuf.MissingValue)
}
