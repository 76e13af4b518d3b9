// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"testing"

	"code.hybscloud.com/membuf"
)

func TestIntHashMap_BasicOperations(t *testing.T) {
	m := membuf.NewIntHashMap[string]()

	if m.Len() != 0 || !m.IsEmpty() {
		t.Fatalf("new map: Len() = %d, IsEmpty() = %v", m.Len(), m.IsEmpty())
	}

	if _, replaced := m.Put(1, "one"); replaced {
		t.Error("Put of fresh key reported replacement")
	}
	m.Put(2, "two")
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	if v, ok := m.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %v, want \"one\", true", v, ok)
	}
	if v, ok := m.Get(2); !ok || v != "two" {
		t.Errorf("Get(2) = %q, %v, want \"two\", true", v, ok)
	}
	if _, ok := m.Get(3); ok {
		t.Error("Get(3) found a missing key")
	}

	previous, replaced := m.Put(1, "ONE")
	if !replaced || previous != "one" {
		t.Errorf("Put over existing key = %q, %v, want \"one\", true", previous, replaced)
	}
	if m.Len() != 2 {
		t.Errorf("Len() after replacement = %d, want 2", m.Len())
	}

	removed, ok := m.Remove(1)
	if !ok || removed != "ONE" {
		t.Errorf("Remove(1) = %q, %v, want \"ONE\", true", removed, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() after removal = %d, want 1", m.Len())
	}
	if _, ok := m.Get(1); ok {
		t.Error("Get(1) found a removed key")
	}
	if _, ok := m.Remove(1); ok {
		t.Error("second Remove(1) reported a removal")
	}
}

func TestIntHashMap_SequentialFill(t *testing.T) {
	m := membuf.NewIntHashMap[int32]()

	for i := int32(0); i < 1000; i++ {
		m.Put(i, 2*i)
		if m.Len() != int(i)+1 {
			t.Fatalf("Len() after inserting %d keys = %d", i+1, m.Len())
		}
	}
	for i := int32(0); i < 1000; i++ {
		if v, ok := m.Get(i); !ok || v != 2*i {
			t.Fatalf("Get(%d) = %d, %v, want %d, true", i, v, ok, 2*i)
		}
	}
	if _, ok := m.Get(-1); ok {
		t.Error("Get(-1) found a never-inserted key")
	}
	// 1000 entries at load factor 0.67 need ceil(1000/0.67) = 1493
	// slots, so the table has doubled up to 2048.
	if m.Cap() != 2048 {
		t.Errorf("Cap() after 1000 inserts = %d, want 2048", m.Cap())
	}
	if m.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", m.Len())
	}
}

func TestIntHashMap_DeleteChain(t *testing.T) {
	m := membuf.NewIntHashMapWithCapacity[int32](8)

	keys := []int32{1, 9, 17, 25}
	for _, k := range keys {
		m.Put(k, k*10)
	}
	if m.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", m.Cap())
	}

	if _, ok := m.Remove(keys[0]); !ok {
		t.Fatalf("Remove(%d) missed", keys[0])
	}
	for _, k := range keys[1:] {
		if v, ok := m.Get(k); !ok || v != k*10 {
			t.Errorf("Get(%d) after chain deletion = %d, %v, want %d, true", k, v, ok, k*10)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestIntHashMap_RemoveCompactsEveryChain(t *testing.T) {
	// Remove each key in turn from a map dense enough to force
	// displacement, verifying the survivors stay reachable.
	const n = 64
	for victim := int32(0); victim < n; victim++ {
		m := membuf.NewIntHashMapWithCapacity[int32](n * 2)
		for i := int32(0); i < n; i++ {
			m.Put(i, i)
		}
		m.Remove(victim)
		for i := int32(0); i < n; i++ {
			_, ok := m.Get(i)
			if i == victim && ok {
				t.Fatalf("victim %d still present", victim)
			}
			if i != victim && !ok {
				t.Fatalf("key %d lost after removing %d", i, victim)
			}
		}
	}
}

func TestIntHashMap_ResizePreservesEntries(t *testing.T) {
	m := membuf.NewIntHashMapWithCapacity[int64](8)
	for i := int32(0); i < 100; i++ {
		m.Put(i*7, int64(i))
		if m.Len() != int(i)+1 {
			t.Fatalf("Len() = %d during growth, want %d", m.Len(), i+1)
		}
	}
	for i := int32(0); i < 100; i++ {
		if v, ok := m.Get(i * 7); !ok || v != int64(i) {
			t.Fatalf("Get(%d) after resizes = %d, %v", i*7, v, ok)
		}
	}
}

func TestIntHashMap_Clear(t *testing.T) {
	m := membuf.NewIntHashMap[int32]()
	for i := int32(0); i < 50; i++ {
		m.Put(i, i)
	}
	capacity := m.Cap()
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", m.Len())
	}
	if m.Cap() != capacity {
		t.Errorf("Cap() after Clear = %d, want %d", m.Cap(), capacity)
	}
	if _, ok := m.Get(7); ok {
		t.Error("Get found a key after Clear")
	}
	m.Put(7, 70)
	if v, ok := m.Get(7); !ok || v != 70 {
		t.Errorf("Get(7) after reuse = %d, %v", v, ok)
	}
}

func TestIntHashMap_Iteration(t *testing.T) {
	m := membuf.NewIntHashMap[int32]()
	want := map[int32]int32{1: 10, 2: 20, 3: 30}
	for k, v := range want {
		m.Put(k, v)
	}

	got := make(map[int32]int32)
	for k, v := range m.All() {
		got[k] = v
	}
	if len(got) != len(want) {
		t.Fatalf("All yielded %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("All yielded %d for key %d, want %d", got[k], k, v)
		}
	}

	keyCount := 0
	for range m.Keys() {
		keyCount++
	}
	valueCount := 0
	for range m.Values() {
		valueCount++
	}
	if keyCount != 3 || valueCount != 3 {
		t.Errorf("Keys/Values yielded %d/%d, want 3/3", keyCount, valueCount)
	}

	// Storage order is deterministic for an unchanged map.
	var first, second []int32
	for k := range m.Keys() {
		first = append(first, k)
	}
	for k := range m.Keys() {
		second = append(second, k)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("iteration order differs between passes: %v vs %v", first, second)
		}
	}
}

func TestIntHashMap_ReservedKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Put of the reserved sentinel key did not panic")
		}
	}()
	m := membuf.NewIntHashMap[int32]()
	m.Put(membuf.MissingValue, 1)
}
