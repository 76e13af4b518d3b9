// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package internal

// NativeLittleEndian reports whether the target architecture stores
// multi-byte values least-significant byte first.
const NativeLittleEndian = true
