// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "math"

// maxInt32Digits and maxInt64Digits bound the shortest decimal forms,
// including a leading '-' ("-2147483648", "-9223372036854775808").
const (
	maxInt32Digits = 11
	maxInt64Digits = 20
)

// parseDigits accumulates ASCII digits into a magnitude capped at limit.
// Any non-digit byte or accumulation past limit is an error.
func parseDigits(s []byte, limit uint64) (uint64, error) {
	var result uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, asciiErrorf("invalid digit: %q", c)
		}
		d := uint64(c - '0')
		if result > limit/10 || (result == limit/10 && d > limit%10) {
			return 0, asciiErrorf("number overflow")
		}
		result = result*10 + d
	}
	return result, nil
}

// ParseNaturalInt32ASCII parses length digit bytes at index as a
// non-negative base-10 number. Empty input, non-digit bytes and
// overflow are reported as ASCIINumberFormatError.
func (b *UnsafeBuffer) ParseNaturalInt32ASCII(index, length int) (int32, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, asciiErrorf("empty string")
	}
	v, err := parseDigits(b.slice(index, length), math.MaxInt32)
	return int32(v), err
}

// ParseNaturalInt64ASCII is the 64-bit form of ParseNaturalInt32ASCII.
func (b *UnsafeBuffer) ParseNaturalInt64ASCII(index, length int) (int64, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, asciiErrorf("empty string")
	}
	v, err := parseDigits(b.slice(index, length), math.MaxInt64)
	return int64(v), err
}

// ParseInt32ASCII parses length bytes at index as a base-10 number with
// an optional leading '-'. A sign with no digits, non-digit bytes and
// values outside the int32 range are reported as ASCIINumberFormatError.
// math.MinInt32 parses exactly.
func (b *UnsafeBuffer) ParseInt32ASCII(index, length int) (int32, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, asciiErrorf("empty string")
	}
	s := b.slice(index, length)
	negative := s[0] == '-'
	if negative {
		s = s[1:]
		if len(s) == 0 {
			return 0, asciiErrorf("no digits found")
		}
	}
	limit := uint64(math.MaxInt32)
	if negative {
		limit++
	}
	magnitude, err := parseDigits(s, limit)
	if err != nil {
		return 0, err
	}
	if negative {
		return int32(-int64(magnitude)), nil
	}
	return int32(magnitude), nil
}

// ParseInt64ASCII is the 64-bit form of ParseInt32ASCII.
// math.MinInt64 parses exactly.
func (b *UnsafeBuffer) ParseInt64ASCII(index, length int) (int64, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, asciiErrorf("empty string")
	}
	s := b.slice(index, length)
	negative := s[0] == '-'
	if negative {
		s = s[1:]
		if len(s) == 0 {
			return 0, asciiErrorf("no digits found")
		}
	}
	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}
	magnitude, err := parseDigits(s, limit)
	if err != nil {
		return 0, err
	}
	if negative {
		return -int64(magnitude), nil
	}
	return int64(magnitude), nil
}

// appendDecimal writes the shortest decimal form of magnitude into the
// tail of tmp and returns the start offset within tmp.
func appendDecimal(tmp []byte, magnitude uint64) int {
	i := len(tmp)
	for {
		i--
		tmp[i] = '0' + byte(magnitude%10)
		magnitude /= 10
		if magnitude == 0 {
			return i
		}
	}
}

// PutInt32ASCII writes the shortest decimal encoding of value at index,
// with a leading '-' for negatives, and returns the number of bytes
// written. Zero encodes as the single byte '0'.
func (b *UnsafeBuffer) PutInt32ASCII(index int, value int32) (int, error) {
	var tmp [maxInt32Digits]byte
	magnitude := uint64(value)
	if value < 0 {
		magnitude = uint64(-int64(value))
	}
	start := appendDecimal(tmp[:], magnitude)
	if value < 0 {
		start--
		tmp[start] = '-'
	}
	length := len(tmp) - start
	if err := b.PutBytes(index, tmp[start:]); err != nil {
		return 0, err
	}
	return length, nil
}

// PutNaturalInt32ASCII writes value like PutInt32ASCII but rejects
// negative values with ASCIINumberFormatError.
func (b *UnsafeBuffer) PutNaturalInt32ASCII(index int, value int32) (int, error) {
	if value < 0 {
		return 0, asciiErrorf("negative value for natural number")
	}
	return b.PutInt32ASCII(index, value)
}

// PutNaturalPaddedInt32ASCII writes the decimal form of value
// left-padded with '0' into exactly length bytes at index. A negative
// value or a representation wider than length is rejected before any
// byte is written.
func (b *UnsafeBuffer) PutNaturalPaddedInt32ASCII(index, length int, value int32) error {
	if value < 0 {
		return asciiErrorf("negative value for natural number")
	}
	if err := b.boundsCheck(index, length); err != nil {
		return err
	}
	var tmp [maxInt32Digits]byte
	start := appendDecimal(tmp[:], uint64(value))
	digits := len(tmp) - start
	if digits > length {
		return asciiErrorf("number too large for specified length")
	}
	s := b.slice(index, length)
	pad := length - digits
	for i := range pad {
		s[i] = '0'
	}
	copy(s[pad:], tmp[start:])
	return nil
}

// PutNaturalInt32ASCIIFromEnd writes the digits of value right-to-left
// so that the last digit lands at endExclusive-1, and returns the index
// of the first digit. On underflow past offset 0 an error is returned
// after some digits have already been written; callers must treat the
// output range as undefined in that case.
func (b *UnsafeBuffer) PutNaturalInt32ASCIIFromEnd(value int32, endExclusive int) (int, error) {
	if value < 0 {
		return 0, asciiErrorf("negative value for natural number")
	}
	magnitude := uint64(value)
	current := endExclusive
	for {
		if current == 0 {
			return 0, &IndexOutOfBoundsError{Index: 0, Length: 1, Capacity: b.capacity}
		}
		current--
		if err := b.PutUint8(current, '0'+byte(magnitude%10)); err != nil {
			return 0, err
		}
		magnitude /= 10
		if magnitude == 0 {
			return current, nil
		}
	}
}

// PutInt64ASCII is the 64-bit form of PutInt32ASCII.
func (b *UnsafeBuffer) PutInt64ASCII(index int, value int64) (int, error) {
	var tmp [maxInt64Digits]byte
	magnitude := uint64(value)
	if value < 0 {
		magnitude = -uint64(value)
	}
	start := appendDecimal(tmp[:], magnitude)
	if value < 0 {
		start--
		tmp[start] = '-'
	}
	length := len(tmp) - start
	if err := b.PutBytes(index, tmp[start:]); err != nil {
		return 0, err
	}
	return length, nil
}

// PutNaturalInt64ASCII is the 64-bit form of PutNaturalInt32ASCII.
func (b *UnsafeBuffer) PutNaturalInt64ASCII(index int, value int64) (int, error) {
	if value < 0 {
		return 0, asciiErrorf("negative value for natural number")
	}
	return b.PutInt64ASCII(index, value)
}
