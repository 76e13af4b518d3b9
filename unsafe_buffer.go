// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"bytes"
	"encoding/binary"
	"math"
	"unsafe"
)

// UnsafeBuffer is a concrete byte region exposing typed get/put
// operations at arbitrary, possibly unaligned offsets. It implements
// DirectBuffer and MutableBuffer.
//
// An owned buffer (NewUnsafeBuffer) holds a cache-line-aligned
// allocation that lives as long as the buffer. A wrapped buffer
// borrows an external region and must not outlive it.
//
// UnsafeBuffer is single-threaded for mutation. Concurrent readers on
// an unmutated instance are safe; concurrent mutation of a shared
// region must go through AtomicBuffer accessors instead.
type UnsafeBuffer struct {
	data     unsafe.Pointer
	capacity int
	owned    bool
}

var (
	_ DirectBuffer  = (*UnsafeBuffer)(nil)
	_ MutableBuffer = (*UnsafeBuffer)(nil)
)

// NewUnsafeBuffer allocates an owned buffer of the given capacity with
// cache-line-aligned backing memory.
func NewUnsafeBuffer(capacity int) (*UnsafeBuffer, error) {
	if capacity <= 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	mem := CacheLineAlignedMem(capacity)
	return &UnsafeBuffer{
		data:     unsafe.Pointer(unsafe.SliceData(mem)),
		capacity: capacity,
		owned:    true,
	}, nil
}

// WrapSlice returns a buffer borrowing the memory of s.
// The buffer must not outlive the slice's backing array.
func WrapSlice(s []byte) *UnsafeBuffer {
	return &UnsafeBuffer{
		data:     unsafe.Pointer(unsafe.SliceData(s)),
		capacity: len(s),
	}
}

// WrapPointer returns a buffer borrowing capacity bytes at p.
// The buffer must not outlive the region p points into.
func WrapPointer(p unsafe.Pointer, capacity int) *UnsafeBuffer {
	return &UnsafeBuffer{data: p, capacity: capacity}
}

// Capacity returns the size of the underlying byte region.
func (b *UnsafeBuffer) Capacity() int {
	return b.capacity
}

// Owned reports whether the buffer owns its backing allocation.
func (b *UnsafeBuffer) Owned() bool {
	return b.owned
}

// Pointer returns the base address of the byte region.
func (b *UnsafeBuffer) Pointer() unsafe.Pointer {
	return b.data
}

// AsSlice returns the whole byte region as a slice sharing the buffer's
// memory. Mutations through either view are visible in both.
func (b *UnsafeBuffer) AsSlice() []byte {
	return unsafe.Slice((*byte)(b.data), b.capacity)
}

// AsAtomicBuffer reinterprets the same byte region as an AtomicBuffer.
// Mixing UnsafeBuffer mutation with concurrent AtomicBuffer access on
// the same byte range is undefined.
func (b *UnsafeBuffer) AsAtomicBuffer() *AtomicBuffer {
	return &AtomicBuffer{UnsafeBuffer: b}
}

func (b *UnsafeBuffer) boundsCheck(index, length int) error {
	if boundsCheckEnabled && (index < 0 || length < 0 || index+length > b.capacity) {
		return &IndexOutOfBoundsError{Index: index, Length: length, Capacity: b.capacity}
	}
	return nil
}

// slice returns the length-byte window at index without bounds checking.
func (b *UnsafeBuffer) slice(index, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Add(b.data, index)), length)
}

func (b *UnsafeBuffer) GetUint8(index int) (uint8, error) {
	if err := b.boundsCheck(index, SizeOfUint8); err != nil {
		return 0, err
	}
	return *(*uint8)(unsafe.Add(b.data, index)), nil
}

func (b *UnsafeBuffer) GetInt8(index int) (int8, error) {
	v, err := b.GetUint8(index)
	return int8(v), err
}

func (b *UnsafeBuffer) PutUint8(index int, value uint8) error {
	if err := b.boundsCheck(index, SizeOfUint8); err != nil {
		return err
	}
	*(*uint8)(unsafe.Add(b.data, index)) = value
	return nil
}

func (b *UnsafeBuffer) PutInt8(index int, value int8) error {
	return b.PutUint8(index, uint8(value))
}

func (b *UnsafeBuffer) GetUint16(index int) (uint16, error) {
	return b.GetUint16WithOrder(index, binary.LittleEndian)
}

func (b *UnsafeBuffer) GetUint16WithOrder(index int, order binary.ByteOrder) (uint16, error) {
	if err := b.boundsCheck(index, SizeOfUint16); err != nil {
		return 0, err
	}
	return order.Uint16(b.slice(index, SizeOfUint16)), nil
}

func (b *UnsafeBuffer) GetInt16(index int) (int16, error) {
	v, err := b.GetUint16(index)
	return int16(v), err
}

func (b *UnsafeBuffer) GetInt16WithOrder(index int, order binary.ByteOrder) (int16, error) {
	v, err := b.GetUint16WithOrder(index, order)
	return int16(v), err
}

func (b *UnsafeBuffer) PutUint16(index int, value uint16) error {
	return b.PutUint16WithOrder(index, value, binary.LittleEndian)
}

func (b *UnsafeBuffer) PutUint16WithOrder(index int, value uint16, order binary.ByteOrder) error {
	if err := b.boundsCheck(index, SizeOfUint16); err != nil {
		return err
	}
	order.PutUint16(b.slice(index, SizeOfUint16), value)
	return nil
}

func (b *UnsafeBuffer) PutInt16(index int, value int16) error {
	return b.PutUint16(index, uint16(value))
}

func (b *UnsafeBuffer) PutInt16WithOrder(index int, value int16, order binary.ByteOrder) error {
	return b.PutUint16WithOrder(index, uint16(value), order)
}

func (b *UnsafeBuffer) GetUint32(index int) (uint32, error) {
	return b.GetUint32WithOrder(index, binary.LittleEndian)
}

func (b *UnsafeBuffer) GetUint32WithOrder(index int, order binary.ByteOrder) (uint32, error) {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return 0, err
	}
	return order.Uint32(b.slice(index, SizeOfUint32)), nil
}

func (b *UnsafeBuffer) GetInt32(index int) (int32, error) {
	v, err := b.GetUint32(index)
	return int32(v), err
}

func (b *UnsafeBuffer) GetInt32WithOrder(index int, order binary.ByteOrder) (int32, error) {
	v, err := b.GetUint32WithOrder(index, order)
	return int32(v), err
}

func (b *UnsafeBuffer) PutUint32(index int, value uint32) error {
	return b.PutUint32WithOrder(index, value, binary.LittleEndian)
}

func (b *UnsafeBuffer) PutUint32WithOrder(index int, value uint32, order binary.ByteOrder) error {
	if err := b.boundsCheck(index, SizeOfUint32); err != nil {
		return err
	}
	order.PutUint32(b.slice(index, SizeOfUint32), value)
	return nil
}

func (b *UnsafeBuffer) PutInt32(index int, value int32) error {
	return b.PutUint32(index, uint32(value))
}

func (b *UnsafeBuffer) PutInt32WithOrder(index int, value int32, order binary.ByteOrder) error {
	return b.PutUint32WithOrder(index, uint32(value), order)
}

func (b *UnsafeBuffer) GetUint64(index int) (uint64, error) {
	return b.GetUint64WithOrder(index, binary.LittleEndian)
}

func (b *UnsafeBuffer) GetUint64WithOrder(index int, order binary.ByteOrder) (uint64, error) {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return 0, err
	}
	return order.Uint64(b.slice(index, SizeOfUint64)), nil
}

func (b *UnsafeBuffer) GetInt64(index int) (int64, error) {
	v, err := b.GetUint64(index)
	return int64(v), err
}

func (b *UnsafeBuffer) GetInt64WithOrder(index int, order binary.ByteOrder) (int64, error) {
	v, err := b.GetUint64WithOrder(index, order)
	return int64(v), err
}

func (b *UnsafeBuffer) PutUint64(index int, value uint64) error {
	return b.PutUint64WithOrder(index, value, binary.LittleEndian)
}

func (b *UnsafeBuffer) PutUint64WithOrder(index int, value uint64, order binary.ByteOrder) error {
	if err := b.boundsCheck(index, SizeOfUint64); err != nil {
		return err
	}
	order.PutUint64(b.slice(index, SizeOfUint64), value)
	return nil
}

func (b *UnsafeBuffer) PutInt64(index int, value int64) error {
	return b.PutUint64(index, uint64(value))
}

func (b *UnsafeBuffer) PutInt64WithOrder(index int, value int64, order binary.ByteOrder) error {
	return b.PutUint64WithOrder(index, uint64(value), order)
}

func (b *UnsafeBuffer) GetFloat32(index int) (float32, error) {
	return b.GetFloat32WithOrder(index, binary.LittleEndian)
}

func (b *UnsafeBuffer) GetFloat32WithOrder(index int, order binary.ByteOrder) (float32, error) {
	v, err := b.GetUint32WithOrder(index, order)
	return math.Float32frombits(v), err
}

func (b *UnsafeBuffer) PutFloat32(index int, value float32) error {
	return b.PutFloat32WithOrder(index, value, binary.LittleEndian)
}

func (b *UnsafeBuffer) PutFloat32WithOrder(index int, value float32, order binary.ByteOrder) error {
	return b.PutUint32WithOrder(index, math.Float32bits(value), order)
}

func (b *UnsafeBuffer) GetFloat64(index int) (float64, error) {
	return b.GetFloat64WithOrder(index, binary.LittleEndian)
}

func (b *UnsafeBuffer) GetFloat64WithOrder(index int, order binary.ByteOrder) (float64, error) {
	v, err := b.GetUint64WithOrder(index, order)
	return math.Float64frombits(v), err
}

func (b *UnsafeBuffer) PutFloat64(index int, value float64) error {
	return b.PutFloat64WithOrder(index, value, binary.LittleEndian)
}

func (b *UnsafeBuffer) PutFloat64WithOrder(index int, value float64, order binary.ByteOrder) error {
	return b.PutUint64WithOrder(index, math.Float64bits(value), order)
}

// GetBytes copies len(dst) bytes starting at index into dst.
func (b *UnsafeBuffer) GetBytes(index int, dst []byte) error {
	if err := b.boundsCheck(index, len(dst)); err != nil {
		return err
	}
	copy(dst, b.slice(index, len(dst)))
	return nil
}

// PutBytes copies src into the buffer starting at index.
func (b *UnsafeBuffer) PutBytes(index int, src []byte) error {
	if err := b.boundsCheck(index, len(src)); err != nil {
		return err
	}
	copy(b.slice(index, len(src)), src)
	return nil
}

// PutBytesFrom copies length bytes of src starting at offset into the
// buffer at index.
func (b *UnsafeBuffer) PutBytesFrom(index int, src []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(src) {
		return &IndexOutOfBoundsError{Index: offset, Length: length, Capacity: len(src)}
	}
	return b.PutBytes(index, src[offset:offset+length])
}

// SetMemory fills length bytes starting at index with value.
func (b *UnsafeBuffer) SetMemory(index, length int, value byte) error {
	if err := b.boundsCheck(index, length); err != nil {
		return err
	}
	s := b.slice(index, length)
	for i := range s {
		s[i] = value
	}
	return nil
}

// Equal reports whether both buffers have the same capacity and
// byte-wise identical contents.
func (b *UnsafeBuffer) Equal(other *UnsafeBuffer) bool {
	return b.capacity == other.capacity && bytes.Equal(b.AsSlice(), other.AsSlice())
}

// Compare lexicographically orders the contents of the two buffers,
// returning -1, 0 or +1 in the manner of bytes.Compare.
func (b *UnsafeBuffer) Compare(other *UnsafeBuffer) int {
	return bytes.Compare(b.AsSlice(), other.AsSlice())
}

// Hash64 returns the byte-stream hash of the whole region.
func (b *UnsafeBuffer) Hash64() uint64 {
	var h Hasher
	_, _ = h.Write(b.AsSlice())
	return h.Sum64()
}
