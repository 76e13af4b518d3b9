// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "encoding/binary"

// StringHeaderLength is the width of the little-endian uint32 length
// header preceding length-prefixed strings.
const StringHeaderLength = SizeOfUint32

// DirectBuffer is a read-only typed view over a fixed byte region.
//
// Every typed read of width W at index i requires i+W <= Capacity()
// when bounds checking is enabled; with bounds checking compiled out
// (build tag membuf_nobounds) the caller owes that precondition.
// Accessors without an explicit order read little-endian.
type DirectBuffer interface {
	// Capacity returns the size of the underlying byte region.
	Capacity() int

	GetUint8(index int) (uint8, error)
	GetInt8(index int) (int8, error)
	GetUint16(index int) (uint16, error)
	GetUint16WithOrder(index int, order binary.ByteOrder) (uint16, error)
	GetInt16(index int) (int16, error)
	GetInt16WithOrder(index int, order binary.ByteOrder) (int16, error)
	GetUint32(index int) (uint32, error)
	GetUint32WithOrder(index int, order binary.ByteOrder) (uint32, error)
	GetInt32(index int) (int32, error)
	GetInt32WithOrder(index int, order binary.ByteOrder) (int32, error)
	GetUint64(index int) (uint64, error)
	GetUint64WithOrder(index int, order binary.ByteOrder) (uint64, error)
	GetInt64(index int) (int64, error)
	GetInt64WithOrder(index int, order binary.ByteOrder) (int64, error)
	GetFloat32(index int) (float32, error)
	GetFloat32WithOrder(index int, order binary.ByteOrder) (float32, error)
	GetFloat64(index int) (float64, error)
	GetFloat64WithOrder(index int, order binary.ByteOrder) (float64, error)

	// GetBytes copies len(dst) bytes starting at index into dst.
	GetBytes(index int, dst []byte) error

	ParseNaturalInt32ASCII(index, length int) (int32, error)
	ParseNaturalInt64ASCII(index, length int) (int64, error)
	ParseInt32ASCII(index, length int) (int32, error)
	ParseInt64ASCII(index, length int) (int64, error)

	GetStringASCII(index int) (string, error)
	GetStringASCIIWithLength(index, length int) (string, error)
	GetStringUTF8(index int) (string, error)
	GetStringUTF8WithLength(index, length int) (string, error)
}

// MutableBuffer extends DirectBuffer with typed writes and the ASCII
// integer codec. Writes mutate the underlying bytes in place.
//
// A MutableBuffer is not safe for concurrent mutation; concurrent
// access to a shared region must go through AtomicBuffer accessors.
type MutableBuffer interface {
	DirectBuffer

	// SetMemory fills length bytes starting at index with value.
	SetMemory(index, length int, value byte) error

	PutUint8(index int, value uint8) error
	PutInt8(index int, value int8) error
	PutUint16(index int, value uint16) error
	PutUint16WithOrder(index int, value uint16, order binary.ByteOrder) error
	PutInt16(index int, value int16) error
	PutInt16WithOrder(index int, value int16, order binary.ByteOrder) error
	PutUint32(index int, value uint32) error
	PutUint32WithOrder(index int, value uint32, order binary.ByteOrder) error
	PutInt32(index int, value int32) error
	PutInt32WithOrder(index int, value int32, order binary.ByteOrder) error
	PutUint64(index int, value uint64) error
	PutUint64WithOrder(index int, value uint64, order binary.ByteOrder) error
	PutInt64(index int, value int64) error
	PutInt64WithOrder(index int, value int64, order binary.ByteOrder) error
	PutFloat32(index int, value float32) error
	PutFloat32WithOrder(index int, value float32, order binary.ByteOrder) error
	PutFloat64(index int, value float64) error
	PutFloat64WithOrder(index int, value float64, order binary.ByteOrder) error

	// PutBytes copies src into the buffer starting at index.
	PutBytes(index int, src []byte) error
	// PutBytesFrom copies length bytes of src starting at offset into
	// the buffer at index.
	PutBytesFrom(index int, src []byte, offset, length int) error

	PutInt32ASCII(index int, value int32) (int, error)
	PutNaturalInt32ASCII(index int, value int32) (int, error)
	PutNaturalPaddedInt32ASCII(index, length int, value int32) error
	PutNaturalInt32ASCIIFromEnd(value int32, endExclusive int) (int, error)
	PutInt64ASCII(index int, value int64) (int, error)
	PutNaturalInt64ASCII(index int, value int64) (int, error)

	PutStringASCII(index int, value string) (int, error)
	PutStringASCIIWithoutLength(index int, value string) (int, error)
	PutStringASCIIWithoutLengthRange(index int, value string, valueOffset, length int) (int, error)
	PutStringUTF8(index int, value string) (int, error)
	PutStringUTF8WithoutLength(index int, value string) (int, error)
}
