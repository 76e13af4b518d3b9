// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package internal

// CacheLineSize is the L1 cache line size for ARM64 architectures.
// Most ARM Cortex-A series use 64-byte L1 cache lines; Apple Silicon
// prefetches in 128-byte pairs. Use 128 bytes as the conservative value.
const CacheLineSize = 128
