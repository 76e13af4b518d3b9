// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package membuf provides low-level primitives for latency-sensitive
// messaging and in-memory data exchange: typed byte buffers, an atomic
// overlay for cross-goroutine publication, open-addressed integer-keyed
// containers, and idle strategies for busy-wait loops.
//
// # Buffers
//
// UnsafeBuffer is a fixed byte region exposing primitive get/put
// operations at arbitrary, possibly unaligned offsets with explicit
// endianness (default little-endian) and bounds checking. A region is
// either owned (allocated cache-line aligned via CacheLineAlignedMem)
// or borrowed from an existing slice or pointer:
//
//	buf, err := membuf.NewUnsafeBuffer(1024)
//	_ = buf.PutUint64(0, 42)
//	v, _ := buf.GetUint64(0)
//
// The DirectBuffer and MutableBuffer interfaces express the read-only
// and read-write views of the same contract. An ASCII integer codec
// and length-prefixed string accessors (4-byte little-endian length
// header) round out the encoding surface. Bounds checks compile out
// under the membuf_nobounds build tag.
//
// # Atomic Overlay
//
// AtomicBuffer reinterprets the same kind of region with volatile
// loads, sequentially consistent and release stores, compare-and-swap
// and fetch-add over 32- and 64-bit slots. A producer publishes with
// PutOrderedUint64 and a consumer that observes the value with
// GetVolatileUint64 also observes every write sequenced before the
// store — the publication idiom under single-producer single-consumer
// ring buffers. Atomic offsets must be naturally aligned for the
// operand width; misaligned access is undefined.
//
// # Integer Containers
//
// IntHashMap and IntHashSet are open-addressed containers specialized
// for int32 keys: linear probing from MixHash(FastIntHash(k)),
// power-of-two capacities with a 0.67 load factor, and backward-shift
// compaction on deletion so probe chains never cross stale holes.
// The key value math.MinInt32 is reserved as the empty-slot marker.
//
// # Idle Strategies
//
// IdleStrategy implementations back off a polling loop: BusySpin,
// Sleeping, Backoff (spin, then yield, then park with doubling
// duration) and Controllable (externally switchable between running,
// parking and backoff). Pause hints come from spin; adaptive parking
// waits use iox.Backoff.
//
// # Buffer Pool
//
// BufferPool is a lock-free bounded MPMC free-list of owned buffers
// handed out by indirect index, with its cursors and turn-stamped
// entries kept in an AtomicBuffer. Blocking and non-blocking modes
// follow the iox conventions (iox.ErrWouldBlock).
//
// # Thread Safety
//
// UnsafeBuffer, IntHashMap, IntHashSet, MutableInteger and MutableLong
// are single-threaded for mutation. AtomicBuffer and BufferPool are
// safe for concurrent use under the alignment and aliasing contracts
// documented on each type.
//
// # Dependencies
//
// membuf depends on:
//   - iox: semantic error types and adaptive waiting (iox.Backoff)
//   - spin: spin-wait primitives for pause hints and bounded spinning
package membuf
