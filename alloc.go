// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "unsafe"

// PageSize is the memory page size used by AlignedMem callers that want
// page alignment. It defaults to 4 KiB.
var PageSize uintptr = 4096

// SetPageSize updates the package-level page size.
func SetPageSize(size int) {
	PageSize = uintptr(size)
}

// AlignedMem returns a byte slice with the specified size and starting
// address aligned to align, which must be a power of two.
//
// The returned slice shares underlying memory with a larger allocation;
// do not assume len(result) == cap(result).
func AlignedMem(size int, align uintptr) []byte {
	p := make([]byte, uintptr(size)+align-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+align-1)/align)*align - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}

// CacheLineAlignedMem returns a byte slice with the specified size and
// starting address aligned to the CPU cache line size. Owned buffers
// allocate through it so that atomic slot accesses at naturally aligned
// offsets never straddle a cache line.
func CacheLineAlignedMem(size int) []byte {
	return AlignedMem(size, uintptr(CacheLineLength))
}

// noCopy is a sentinel used to prevent copying of synchronization primitives.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
