// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "strconv"

// MutableInteger is a boxed int32 counter. The atomic-flavored method
// names are historical; the type is not thread-safe.
type MutableInteger struct {
	value int32
}

// NewMutableInteger returns a counter holding value.
func NewMutableInteger(value int32) *MutableInteger {
	return &MutableInteger{value: value}
}

// Get returns the current value.
func (m *MutableInteger) Get() int32 { return m.value }

// Set replaces the current value.
func (m *MutableInteger) Set(value int32) { m.value = value }

// Increment adds one and returns the new value.
func (m *MutableInteger) Increment() int32 {
	m.value++
	return m.value
}

// Decrement subtracts one and returns the new value.
func (m *MutableInteger) Decrement() int32 {
	m.value--
	return m.value
}

// AddAndGet adds delta and returns the new value.
func (m *MutableInteger) AddAndGet(delta int32) int32 {
	m.value += delta
	return m.value
}

// GetAndAdd adds delta and returns the previous value.
func (m *MutableInteger) GetAndAdd(delta int32) int32 {
	previous := m.value
	m.value += delta
	return previous
}

// GetAndIncrement adds one and returns the previous value.
func (m *MutableInteger) GetAndIncrement() int32 {
	previous := m.value
	m.value++
	return previous
}

// GetAndDecrement subtracts one and returns the previous value.
func (m *MutableInteger) GetAndDecrement() int32 {
	previous := m.value
	m.value--
	return previous
}

// CompareAndSet replaces the value with update if it equals expected,
// reporting whether the replacement happened.
func (m *MutableInteger) CompareAndSet(expected, update int32) bool {
	if m.value != expected {
		return false
	}
	m.value = update
	return true
}

// GetAndSet replaces the value and returns the previous one.
func (m *MutableInteger) GetAndSet(value int32) int32 {
	previous := m.value
	m.value = value
	return previous
}

func (m *MutableInteger) String() string {
	return strconv.FormatInt(int64(m.value), 10)
}

// MutableLong is the int64 form of MutableInteger.
type MutableLong struct {
	value int64
}

// NewMutableLong returns a counter holding value.
func NewMutableLong(value int64) *MutableLong {
	return &MutableLong{value: value}
}

// Get returns the current value.
func (m *MutableLong) Get() int64 { return m.value }

// Set replaces the current value.
func (m *MutableLong) Set(value int64) { m.value = value }

// Increment adds one and returns the new value.
func (m *MutableLong) Increment() int64 {
	m.value++
	return m.value
}

// Decrement subtracts one and returns the new value.
func (m *MutableLong) Decrement() int64 {
	m.value--
	return m.value
}

// AddAndGet adds delta and returns the new value.
func (m *MutableLong) AddAndGet(delta int64) int64 {
	m.value += delta
	return m.value
}

// GetAndAdd adds delta and returns the previous value.
func (m *MutableLong) GetAndAdd(delta int64) int64 {
	previous := m.value
	m.value += delta
	return previous
}

// GetAndIncrement adds one and returns the previous value.
func (m *MutableLong) GetAndIncrement() int64 {
	previous := m.value
	m.value++
	return previous
}

// GetAndDecrement subtracts one and returns the previous value.
func (m *MutableLong) GetAndDecrement() int64 {
	previous := m.value
	m.value--
	return previous
}

// CompareAndSet replaces the value with update if it equals expected,
// reporting whether the replacement happened.
func (m *MutableLong) CompareAndSet(expected, update int64) bool {
	if m.value != expected {
		return false
	}
	m.value = update
	return true
}

// GetAndSet replaces the value and returns the previous one.
func (m *MutableLong) GetAndSet(value int64) int64 {
	previous := m.value
	m.value = value
	return previous
}

func (m *MutableLong) String() string {
	return strconv.FormatInt(m.value, 10)
}
