// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"encoding/binary"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/membuf/internal"
)

// AtomicBuffer reinterprets a byte region for cross-thread sharing,
// layering volatile, ordered and read-modify-write accessors over the
// same memory an UnsafeBuffer addresses. Plain typed accessors are
// inherited from the embedded UnsafeBuffer.
//
// Preconditions: 32-bit atomic operations require the offset to be
// 4-byte aligned and 64-bit operations require 8-byte alignment.
// Misaligned atomic access is undefined and is not detected. Owned
// buffers are cache-line aligned, so any naturally aligned offset
// within them satisfies this; wrapped regions inherit the caller's
// alignment.
//
// The region may be shared across goroutines so long as every
// concurrent access to a given slot goes through AtomicBuffer
// accessors. Mixing UnsafeBuffer mutation with concurrent AtomicBuffer
// access on the same byte range is undefined.
type AtomicBuffer struct {
	*UnsafeBuffer
}

var _ MutableBuffer = (*AtomicBuffer)(nil)

// NewAtomicBuffer allocates an owned, cache-line-aligned region of the
// given capacity and returns its atomic view.
func NewAtomicBuffer(capacity int) (*AtomicBuffer, error) {
	b, err := NewUnsafeBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &AtomicBuffer{UnsafeBuffer: b}, nil
}

// WrapAtomicSlice returns an atomic view borrowing the memory of s.
func WrapAtomicSlice(s []byte) *AtomicBuffer {
	return &AtomicBuffer{UnsafeBuffer: WrapSlice(s)}
}

// nativeByteOrder is the byte order the target architecture stores
// multi-byte values in. Read-modify-write accessors operate on slots
// in this order.
var nativeByteOrder binary.ByteOrder = func() binary.ByteOrder {
	if internal.NativeLittleEndian {
		return binary.ByteOrder(binary.LittleEndian)
	}
	return binary.ByteOrder(binary.BigEndian)
}()

// nativeOrderUint32 converts between a stored byte order and the value
// the native-width atomic op sees.
func nativeOrderUint32(value uint32, order binary.ByteOrder) uint32 {
	if (order == binary.ByteOrder(binary.LittleEndian)) == internal.NativeLittleEndian {
		return value
	}
	return bits.ReverseBytes32(value)
}

func nativeOrderUint64(value uint64, order binary.ByteOrder) uint64 {
	if (order == binary.ByteOrder(binary.LittleEndian)) == internal.NativeLittleEndian {
		return value
	}
	return bits.ReverseBytes64(value)
}

func (b *AtomicBuffer) uint32Ptr(index int) *uint32 {
	return (*uint32)(unsafe.Add(b.data, index))
}

func (b *AtomicBuffer) uint64Ptr(index int) *uint64 {
	return (*uint64)(unsafe.Add(b.data, index))
}

// GetVolatileUint8 loads the byte at index. Single-byte accesses are
// single-copy atomic on all supported architectures; only byte
// alignment is required.
func (b *AtomicBuffer) GetVolatileUint8(index int) (uint8, error) {
	if err := b.boundsCheck(index, SizeOfUint8); err != nil {
		return 0, err
	}
	return *(*uint8)(unsafe.Add(b.data, index)), nil
}

// PutVolatileUint8 stores value at index. See GetVolatileUint8.
func (b *AtomicBuffer) PutVolatileUint8(index int, value uint8) error {
	if err := b.boundsCheck(index, SizeOfUint8); err != nil {
		return err
	}
	*(*uint8)(unsafe.Add(b.data, index)) = value
	return nil
}

// GetVolatileUint32 loads the little-endian slot at index with acquire
// semantics.
func (b *AtomicBuffer) GetVolatileUint32(index int) (uint32, error) {
	return b.GetVolatileUint32WithOrder(index, binary.LittleEndian)
}

// GetVolatileUint32WithOrder loads the slot at index with acquire
// semantics, interpreting the stored bytes in the given order.
func (b *AtomicBuffer) GetVolatileUint32WithOrder(index int, order binary.ByteOrder) (uint32, error) {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return 0, err
	}
	return nativeOrderUint32(atomic.LoadUint32(b.uint32Ptr(index)), order), nil
}

// PutVolatileUint32 stores value at index with sequentially consistent
// semantics.
func (b *AtomicBuffer) PutVolatileUint32(index int, value uint32) error {
	return b.PutVolatileUint32WithOrder(index, value, binary.LittleEndian)
}

// PutVolatileUint32WithOrder stores value at index with sequentially
// consistent semantics, laying the bytes out in the given order.
func (b *AtomicBuffer) PutVolatileUint32WithOrder(index int, value uint32, order binary.ByteOrder) error {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return err
	}
	atomic.StoreUint32(b.uint32Ptr(index), nativeOrderUint32(value, order))
	return nil
}

// PutOrderedUint32 stores value at index with release semantics, so a
// consumer that acquires the slot with GetVolatileUint32 also observes
// every write sequenced before this store.
func (b *AtomicBuffer) PutOrderedUint32(index int, value uint32) error {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return err
	}
	atomic.StoreUint32(b.uint32Ptr(index), nativeOrderUint32(value, binary.LittleEndian))
	return nil
}

// GetVolatileUint64 loads the little-endian slot at index with acquire
// semantics.
func (b *AtomicBuffer) GetVolatileUint64(index int) (uint64, error) {
	return b.GetVolatileUint64WithOrder(index, binary.LittleEndian)
}

// GetVolatileUint64WithOrder loads the slot at index with acquire
// semantics, interpreting the stored bytes in the given order.
func (b *AtomicBuffer) GetVolatileUint64WithOrder(index int, order binary.ByteOrder) (uint64, error) {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return 0, err
	}
	return nativeOrderUint64(atomic.LoadUint64(b.uint64Ptr(index)), order), nil
}

// PutVolatileUint64 stores value at index with sequentially consistent
// semantics.
func (b *AtomicBuffer) PutVolatileUint64(index int, value uint64) error {
	return b.PutVolatileUint64WithOrder(index, value, binary.LittleEndian)
}

// PutVolatileUint64WithOrder stores value at index with sequentially
// consistent semantics, laying the bytes out in the given order.
func (b *AtomicBuffer) PutVolatileUint64WithOrder(index int, value uint64, order binary.ByteOrder) error {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return err
	}
	atomic.StoreUint64(b.uint64Ptr(index), nativeOrderUint64(value, order))
	return nil
}

// PutOrderedUint64 stores value at index with release semantics. This
// is the producer half of the release/acquire publication idiom behind
// single-producer single-consumer ring buffers.
func (b *AtomicBuffer) PutOrderedUint64(index int, value uint64) error {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return err
	}
	atomic.StoreUint64(b.uint64Ptr(index), nativeOrderUint64(value, binary.LittleEndian))
	return nil
}

// AddOrderedUint64 adds delta to the native-order slot at index with
// release semantics on the result store.
func (b *AtomicBuffer) AddOrderedUint64(index int, delta uint64) error {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return err
	}
	atomic.AddUint64(b.uint64Ptr(index), delta)
	return nil
}

// GetAndAddUint32 atomically adds delta to the native-order slot at
// index and returns the previous value.
func (b *AtomicBuffer) GetAndAddUint32(index int, delta uint32) (uint32, error) {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return 0, err
	}
	return atomic.AddUint32(b.uint32Ptr(index), delta) - delta, nil
}

// GetAndAddUint64 atomically adds delta to the native-order slot at
// index and returns the previous value.
func (b *AtomicBuffer) GetAndAddUint64(index int, delta uint64) (uint64, error) {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return 0, err
	}
	return atomic.AddUint64(b.uint64Ptr(index), delta) - delta, nil
}

// CompareAndSetUint32 atomically replaces the native-order slot at
// index with update if it equals expected, reporting whether the swap
// happened.
func (b *AtomicBuffer) CompareAndSetUint32(index int, expected, update uint32) (bool, error) {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return false, err
	}
	return atomic.CompareAndSwapUint32(b.uint32Ptr(index), expected, update), nil
}

// CompareAndSetUint64 atomically replaces the native-order slot at
// index with update if it equals expected, reporting whether the swap
// happened.
func (b *AtomicBuffer) CompareAndSetUint64(index int, expected, update uint64) (bool, error) {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return false, err
	}
	return atomic.CompareAndSwapUint64(b.uint64Ptr(index), expected, update), nil
}

// GetVolatileInt32 loads the little-endian slot at index with acquire
// semantics.
func (b *AtomicBuffer) GetVolatileInt32(index int) (int32, error) {
	v, err := b.GetVolatileUint32(index)
	return int32(v), err
}

// PutVolatileInt32 stores value at index with sequentially consistent
// semantics.
func (b *AtomicBuffer) PutVolatileInt32(index int, value int32) error {
	return b.PutVolatileUint32(index, uint32(value))
}

// PutOrderedInt32 stores value at index with release semantics.
func (b *AtomicBuffer) PutOrderedInt32(index int, value int32) error {
	return b.PutOrderedUint32(index, uint32(value))
}

// GetVolatileInt64 loads the little-endian slot at index with acquire
// semantics.
func (b *AtomicBuffer) GetVolatileInt64(index int) (int64, error) {
	v, err := b.GetVolatileUint64(index)
	return int64(v), err
}

// PutVolatileInt64 stores value at index with sequentially consistent
// semantics.
func (b *AtomicBuffer) PutVolatileInt64(index int, value int64) error {
	return b.PutVolatileUint64(index, uint64(value))
}

// PutOrderedInt64 stores value at index with release semantics.
func (b *AtomicBuffer) PutOrderedInt64(index int, value int64) error {
	return b.PutOrderedUint64(index, uint64(value))
}

// GetAndAddInt64 atomically adds delta to the slot at index and returns
// the previous value.
func (b *AtomicBuffer) GetAndAddInt64(index int, delta int64) (int64, error) {
	v, err := b.GetAndAddUint64(index, uint64(delta))
	return int64(v), err
}

// CompareAndSetInt64 atomically replaces the slot at index with update
// if it equals expected.
func (b *AtomicBuffer) CompareAndSetInt64(index int, expected, update int64) (bool, error) {
	return b.CompareAndSetUint64(index, uint64(expected), uint64(update))
}
