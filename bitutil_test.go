// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"testing"

	"code.hybscloud.com/membuf"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 8, 1024, 1 << 62} {
		if !membuf.IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) = false", v)
		}
	}
	for _, v := range []uint64{0, 3, 5, 6, 1023, 1<<62 + 1} {
		if membuf.IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) = true", v)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{1, 1}, {2, 2}, {3, 4}, {5, 8}, {9, 16},
		{1023, 1024}, {1024, 1024}, {1025, 2048}, {1493, 2048},
	}
	for _, tc := range cases {
		if got := membuf.NextPowerOfTwo(tc.in); got != tc.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAlign(t *testing.T) {
	cases := []struct{ size, alignment, want int }{
		{1, 4, 4}, {4, 4, 4}, {5, 4, 8}, {7, 8, 8}, {9, 8, 16}, {0, 64, 0}, {65, 64, 128},
	}
	for _, tc := range cases {
		if got := membuf.Align(tc.size, tc.alignment); got != tc.want {
			t.Errorf("Align(%d, %d) = %d, want %d", tc.size, tc.alignment, got, tc.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !membuf.IsAligned(0x1000, 64) {
		t.Error("IsAligned(0x1000, 64) = false")
	}
	if membuf.IsAligned(0x1001, 64) {
		t.Error("IsAligned(0x1001, 64) = true")
	}
	if !membuf.IsAligned(0x1001, 1) {
		t.Error("IsAligned(0x1001, 1) = false")
	}
}

func TestHexDigits(t *testing.T) {
	const digits = "0123456789abcdef"
	for i := range byte(16) {
		if got := membuf.FastHexDigit(i); got != digits[i] {
			t.Errorf("FastHexDigit(%d) = %q, want %q", i, got, digits[i])
		}
	}
	// High nibble is masked off.
	if got := membuf.FastHexDigit(0xf5); got != '5' {
		t.Errorf("FastHexDigit(0xf5) = %q, want '5'", got)
	}

	for i := range byte(16) {
		lower := digits[i]
		if got, err := membuf.FromHexDigit(lower); err != nil || got != i {
			t.Errorf("FromHexDigit(%q) = %d, %v, want %d, nil", lower, got, err, i)
		}
	}
	for _, c := range []byte{'A', 'F'} {
		if got, err := membuf.FromHexDigit(c); err != nil || got != c-'A'+10 {
			t.Errorf("FromHexDigit(%q) = %d, %v", c, got, err)
		}
	}
	for _, c := range []byte{'g', 'G', ' ', '/', ':'} {
		if _, err := membuf.FromHexDigit(c); err == nil {
			t.Errorf("FromHexDigit(%q) did not fail", c)
		}
	}
}

func TestZeroCounts(t *testing.T) {
	if got := membuf.NumberOfLeadingZerosUint32(1); got != 31 {
		t.Errorf("NumberOfLeadingZerosUint32(1) = %d, want 31", got)
	}
	if got := membuf.NumberOfLeadingZerosUint32(0); got != 32 {
		t.Errorf("NumberOfLeadingZerosUint32(0) = %d, want 32", got)
	}
	if got := membuf.NumberOfLeadingZerosUint64(1); got != 63 {
		t.Errorf("NumberOfLeadingZerosUint64(1) = %d, want 63", got)
	}
	if got := membuf.NumberOfTrailingZerosUint32(0x80000000); got != 31 {
		t.Errorf("NumberOfTrailingZerosUint32(1<<31) = %d, want 31", got)
	}
	if got := membuf.NumberOfTrailingZerosUint64(1 << 40); got != 40 {
		t.Errorf("NumberOfTrailingZerosUint64(1<<40) = %d, want 40", got)
	}
	if got := membuf.NumberOfTrailingZerosUint64(0); got != 64 {
		t.Errorf("NumberOfTrailingZerosUint64(0) = %d, want 64", got)
	}
}
