// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "unicode/utf8"

// Length-prefixed strings are encoded as a 4-byte little-endian uint32
// length header followed by the payload bytes, with no terminator.

func asciiOnly(s []byte) error {
	for _, c := range s {
		if c > 127 {
			return asciiErrorf("non-ascii character found: %#x", c)
		}
	}
	return nil
}

// GetStringASCII reads a length-prefixed ASCII string at index.
func (b *UnsafeBuffer) GetStringASCII(index int) (string, error) {
	length, err := b.GetUint32(index)
	if err != nil {
		return "", err
	}
	return b.GetStringASCIIWithLength(index+StringHeaderLength, int(length))
}

// GetStringASCIIWithLength reads length ASCII bytes at index without a
// header. Bytes above 127 are rejected.
func (b *UnsafeBuffer) GetStringASCIIWithLength(index, length int) (string, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return "", err
	}
	s := b.slice(index, length)
	if err := asciiOnly(s); err != nil {
		return "", err
	}
	return string(s), nil
}

// PutStringASCII writes value at index as a length header followed by
// the ASCII payload and returns 4+len(value). Bytes above 127 are
// rejected before anything is written; a payload that does not fit is
// reported as BufferOverflowError.
func (b *UnsafeBuffer) PutStringASCII(index int, value string) (int, error) {
	if err := asciiOnly([]byte(value)); err != nil {
		return 0, err
	}
	total := StringHeaderLength + len(value)
	if index >= 0 && index <= b.capacity && total > b.capacity-index {
		return 0, &BufferOverflowError{Attempted: total, Available: b.capacity - index}
	}
	if err := b.PutUint32(index, uint32(len(value))); err != nil {
		return 0, err
	}
	if err := b.PutBytes(index+StringHeaderLength, []byte(value)); err != nil {
		return 0, err
	}
	return total, nil
}

// PutStringASCIIWithoutLength writes the ASCII payload of value at
// index with no header and returns len(value).
func (b *UnsafeBuffer) PutStringASCIIWithoutLength(index int, value string) (int, error) {
	return b.PutStringASCIIWithoutLengthRange(index, value, 0, len(value))
}

// PutStringASCIIWithoutLengthRange writes length bytes of value
// starting at valueOffset, rejecting bytes above 127.
func (b *UnsafeBuffer) PutStringASCIIWithoutLengthRange(index int, value string, valueOffset, length int) (int, error) {
	if valueOffset < 0 || length < 0 || valueOffset+length > len(value) {
		return 0, &IndexOutOfBoundsError{Index: valueOffset, Length: length, Capacity: len(value)}
	}
	s := []byte(value[valueOffset : valueOffset+length])
	if err := asciiOnly(s); err != nil {
		return 0, err
	}
	if err := b.PutBytes(index, s); err != nil {
		return 0, err
	}
	return length, nil
}

// GetStringUTF8 reads a length-prefixed UTF-8 string at index,
// validating the encoding.
func (b *UnsafeBuffer) GetStringUTF8(index int) (string, error) {
	length, err := b.GetUint32(index)
	if err != nil {
		return "", err
	}
	return b.GetStringUTF8WithLength(index+StringHeaderLength, int(length))
}

// GetStringUTF8WithLength reads length bytes at index without a header
// and validates them as UTF-8.
func (b *UnsafeBuffer) GetStringUTF8WithLength(index, length int) (string, error) {
	if err := b.boundsCheck(index, length); err != nil {
		return "", err
	}
	s := b.slice(index, length)
	if !utf8.Valid(s) {
		return "", &UTF8Error{Index: index, Length: length}
	}
	return string(s), nil
}

// PutStringUTF8 writes value at index as a length header followed by
// its UTF-8 bytes and returns 4+len(value).
func (b *UnsafeBuffer) PutStringUTF8(index int, value string) (int, error) {
	total := StringHeaderLength + len(value)
	if index >= 0 && index <= b.capacity && total > b.capacity-index {
		return 0, &BufferOverflowError{Attempted: total, Available: b.capacity - index}
	}
	if err := b.PutUint32(index, uint32(len(value))); err != nil {
		return 0, err
	}
	if err := b.PutBytes(index+StringHeaderLength, []byte(value)); err != nil {
		return 0, err
	}
	return total, nil
}

// PutStringUTF8WithoutLength writes the UTF-8 bytes of value at index
// with no header and returns len(value).
func (b *UnsafeBuffer) PutStringUTF8WithoutLength(index int, value string) (int, error) {
	if err := b.PutBytes(index, []byte(value)); err != nil {
		return 0, err
	}
	return len(value), nil
}
