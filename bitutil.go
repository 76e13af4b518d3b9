// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"math/bits"

	"code.hybscloud.com/membuf/internal"
)

// Widths in bytes of the primitive types handled by the buffer accessors.
const (
	SizeOfUint8   = 1
	SizeOfInt8    = 1
	SizeOfUint16  = 2
	SizeOfInt16   = 2
	SizeOfUint32  = 4
	SizeOfInt32   = 4
	SizeOfFloat32 = 4
	SizeOfUint64  = 8
	SizeOfInt64   = 8
	SizeOfFloat64 = 8
)

// CacheLineLength is the CPU cache line size for the target architecture,
// detected at compile time. Owned buffer allocations are aligned to it.
const CacheLineLength = internal.CacheLineSize

// IsPowerOfTwo reports whether value is a positive power of two.
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && value&(value-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to value. A value that is already a power of two is returned unchanged;
// NextPowerOfTwo(1) == 1. The result is undefined for value == 0 and for
// values above 1<<31.
func NextPowerOfTwo(value uint32) uint32 {
	value--
	value |= value >> 1
	value |= value >> 2
	value |= value >> 4
	value |= value >> 8
	value |= value >> 16
	return value + 1
}

// Align rounds size up to the next multiple of alignment.
// The alignment must be a power of two.
func Align(size, alignment int) int {
	return (size + alignment - 1) &^ (alignment - 1)
}

// IsAligned reports whether addr is a multiple of alignment.
// The alignment must be a power of two.
func IsAligned(addr uintptr, alignment int) bool {
	return addr&uintptr(alignment-1) == 0
}

var hexDigits = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// FastHexDigit returns the lowercase ASCII hex digit for the low nibble
// of value.
func FastHexDigit(value byte) byte {
	return hexDigits[value&0x0f]
}

// FromHexDigit returns the numeric value of an ASCII hex digit,
// accepting 0-9, a-f and A-F.
func FromHexDigit(digit byte) (byte, error) {
	switch {
	case digit >= '0' && digit <= '9':
		return digit - '0', nil
	case digit >= 'a' && digit <= 'f':
		return digit - 'a' + 10, nil
	case digit >= 'A' && digit <= 'F':
		return digit - 'A' + 10, nil
	default:
		return 0, asciiErrorf("invalid hex digit: %q", digit)
	}
}

// NumberOfLeadingZerosUint32 returns the count of leading zero bits in value.
func NumberOfLeadingZerosUint32(value uint32) int {
	return bits.LeadingZeros32(value)
}

// NumberOfLeadingZerosUint64 returns the count of leading zero bits in value.
func NumberOfLeadingZerosUint64(value uint64) int {
	return bits.LeadingZeros64(value)
}

// NumberOfTrailingZerosUint32 returns the count of trailing zero bits in value.
func NumberOfTrailingZerosUint32(value uint32) int {
	return bits.TrailingZeros32(value)
}

// NumberOfTrailingZerosUint64 returns the count of trailing zero bits in value.
func NumberOfTrailingZerosUint64(value uint64) int {
	return bits.TrailingZeros64(value)
}
