// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"testing"

	"code.hybscloud.com/membuf"
)

func TestMutableInteger(t *testing.T) {
	mi := membuf.NewMutableInteger(42)
	if mi.Get() != 42 {
		t.Errorf("Get() = %d, want 42", mi.Get())
	}

	mi.Set(100)
	if mi.Get() != 100 {
		t.Errorf("Get() after Set = %d, want 100", mi.Get())
	}

	if got := mi.Increment(); got != 101 {
		t.Errorf("Increment() = %d, want 101", got)
	}
	if got := mi.GetAndIncrement(); got != 101 {
		t.Errorf("GetAndIncrement() = %d, want 101", got)
	}
	if mi.Get() != 102 {
		t.Errorf("Get() = %d, want 102", mi.Get())
	}
	if got := mi.Decrement(); got != 101 {
		t.Errorf("Decrement() = %d, want 101", got)
	}
	if got := mi.GetAndDecrement(); got != 101 {
		t.Errorf("GetAndDecrement() = %d, want 101", got)
	}

	mi.Set(100)
	if got := mi.AddAndGet(10); got != 110 {
		t.Errorf("AddAndGet(10) = %d, want 110", got)
	}
	if got := mi.GetAndAdd(5); got != 110 {
		t.Errorf("GetAndAdd(5) = %d, want 110", got)
	}
	if mi.Get() != 115 {
		t.Errorf("Get() = %d, want 115", mi.Get())
	}

	if !mi.CompareAndSet(115, 200) {
		t.Error("CompareAndSet with matching expected failed")
	}
	if mi.CompareAndSet(100, 300) {
		t.Error("CompareAndSet with stale expected succeeded")
	}
	if mi.Get() != 200 {
		t.Errorf("Get() after CAS = %d, want 200", mi.Get())
	}

	if got := mi.GetAndSet(7); got != 200 {
		t.Errorf("GetAndSet(7) = %d, want 200", got)
	}
	if mi.String() != "7" {
		t.Errorf("String() = %q, want \"7\"", mi.String())
	}
}

func TestMutableLong(t *testing.T) {
	ml := membuf.NewMutableLong(1234567890123456789)
	if ml.Get() != 1234567890123456789 {
		t.Errorf("Get() = %d", ml.Get())
	}

	ml.Set(-9000000000000000000)
	if got := ml.Increment(); got != -8999999999999999999 {
		t.Errorf("Increment() = %d", got)
	}

	ml.Set(10)
	if got := ml.AddAndGet(-4); got != 6 {
		t.Errorf("AddAndGet(-4) = %d, want 6", got)
	}
	if got := ml.GetAndAdd(1); got != 6 {
		t.Errorf("GetAndAdd(1) = %d, want 6", got)
	}
	if !ml.CompareAndSet(7, 8) {
		t.Error("CompareAndSet(7, 8) failed")
	}
	if got := ml.GetAndSet(0); got != 8 {
		t.Errorf("GetAndSet(0) = %d, want 8", got)
	}
}
