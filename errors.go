// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "fmt"

// IndexOutOfBoundsError is returned by typed accessors whose access
// window of Length bytes starting at Index exceeds the buffer capacity.
type IndexOutOfBoundsError struct {
	Index    int
	Length   int
	Capacity int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, length %d, capacity %d",
		e.Index, e.Length, e.Capacity)
}

// InvalidCapacityError is returned when a buffer is constructed with a
// zero or negative capacity.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

// BufferOverflowError is returned by bulk encoders when the encoded
// form does not fit in the remaining buffer space.
type BufferOverflowError struct {
	Attempted int
	Available int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("buffer overflow: attempted to write %d bytes, available %d",
		e.Attempted, e.Available)
}

// ASCIINumberFormatError is returned by the ASCII integer codec for
// empty input, non-digit bytes, a sign without digits, overflow during
// accumulation, a negative value passed to a natural-number writer, or
// a non-ASCII byte in ASCII-only strings.
type ASCIINumberFormatError struct {
	Message string
}

func (e *ASCIINumberFormatError) Error() string {
	return "ascii number format: " + e.Message
}

func asciiErrorf(format string, args ...any) error {
	return &ASCIINumberFormatError{Message: fmt.Sprintf(format, args...)}
}

// UTF8Error is returned when a UTF-8 string decode encounters an
// invalid byte sequence in the window of Length bytes at Index.
type UTF8Error struct {
	Index  int
	Length int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence: index %d, length %d", e.Index, e.Length)
}
