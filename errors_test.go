// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/membuf"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&membuf.IndexOutOfBoundsError{Index: 61, Length: 4, Capacity: 64},
			"index out of bounds: index 61, length 4, capacity 64"},
		{&membuf.InvalidCapacityError{Capacity: 0},
			"invalid capacity: 0"},
		{&membuf.BufferOverflowError{Attempted: 18, Available: 8},
			"buffer overflow: attempted to write 18 bytes, available 8"},
		{&membuf.ASCIINumberFormatError{Message: "empty string"},
			"ascii number format: empty string"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}

	utf8Err := &membuf.UTF8Error{Index: 4, Length: 2}
	if !strings.Contains(utf8Err.Error(), "utf-8") {
		t.Errorf("UTF8Error message %q does not mention utf-8", utf8Err.Error())
	}
}
