// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/membuf"
)

func TestAlignedMem(t *testing.T) {
	const size = 8192
	mem := membuf.AlignedMem(size, membuf.PageSize)

	if len(mem) != size {
		t.Errorf("AlignedMem length = %d, want %d", len(mem), size)
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	if ptr%membuf.PageSize != 0 {
		t.Errorf("AlignedMem not page-aligned: address %#x %% %d = %d", ptr, membuf.PageSize, ptr%membuf.PageSize)
	}
}

func TestAlignedMem_NonStandardAlignment(t *testing.T) {
	const align = uintptr(8192)
	mem := membuf.AlignedMem(1024, align)

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	if ptr%align != 0 {
		t.Errorf("AlignedMem not aligned to %d: address %#x", align, ptr)
	}
}

func TestCacheLineAlignedMem(t *testing.T) {
	mem := membuf.CacheLineAlignedMem(300)

	if len(mem) != 300 {
		t.Errorf("CacheLineAlignedMem length = %d, want 300", len(mem))
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	if !membuf.IsAligned(ptr, membuf.CacheLineLength) {
		t.Errorf("CacheLineAlignedMem not aligned: address %#x %% %d = %d",
			ptr, membuf.CacheLineLength, ptr%uintptr(membuf.CacheLineLength))
	}
}

func TestSetPageSize(t *testing.T) {
	original := membuf.PageSize
	defer membuf.SetPageSize(int(original))

	membuf.SetPageSize(8192)
	if membuf.PageSize != 8192 {
		t.Errorf("SetPageSize(8192) resulted in PageSize = %d, want 8192", membuf.PageSize)
	}
}
