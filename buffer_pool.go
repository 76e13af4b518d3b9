// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"math"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// BufferPool is a lock-free bounded MPMC free-list of equally sized,
// owned UnsafeBuffers. Buffers are handed out as indirect indices so
// that pool operations move only small integers; Value resolves an
// index to its buffer without copying.
//
// The pool's own state — head and tail cursors on separate cache lines
// and a turn-stamped entry word per slot — lives in an AtomicBuffer
// and is driven entirely through its volatile and compare-and-set
// accessors.
//
// In blocking mode (the default) Get waits while the pool is empty and
// Put waits while it is full. With SetNonblock(true) both return
// iox.ErrWouldBlock instead. BufferPool is safe for concurrent use.
type BufferPool struct {
	_ noCopy

	buffers   []*UnsafeBuffer
	meta      *AtomicBuffer
	capacity  uint32
	mask      uint32
	remapM    uint32
	remapN    uint32
	remapMask uint32

	nonblocking bool
}

const (
	poolHeadOffset    = 0
	poolTailOffset    = CacheLineLength
	poolEntriesOffset = 2 * CacheLineLength

	poolEntryEmpty    = 1 << 62
	poolEntryTurnMask = poolEntryEmpty>>32 - 1
)

// NewBufferPool creates a pool of capacity buffers of bufferCapacity
// bytes each, all owned and cache-line aligned. The pool capacity is
// rounded up to the next power of two.
func NewBufferPool(capacity, bufferCapacity int) (*BufferPool, error) {
	if capacity < 1 || capacity > math.MaxUint32>>2 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	capacity = int(NextPowerOfTwo(uint32(capacity)))

	meta, err := NewAtomicBuffer(poolEntriesOffset + capacity*SizeOfUint64)
	if err != nil {
		return nil, err
	}
	buffers := make([]*UnsafeBuffer, capacity)
	for i := range buffers {
		if buffers[i], err = NewUnsafeBuffer(bufferCapacity); err != nil {
			return nil, err
		}
	}

	// Spread adjacent cursor positions across cache lines so that
	// concurrent producers and consumers do not contend on one line.
	remapM := min(uint32(CacheLineLength/SizeOfUint64), uint32(capacity))
	remapN := max(1, uint32(capacity)/remapM)

	pool := &BufferPool{
		buffers:   buffers,
		meta:      meta,
		capacity:  uint32(capacity),
		mask:      uint32(capacity - 1),
		remapM:    remapM,
		remapN:    remapN,
		remapMask: remapN - 1,
	}
	for i := range pool.capacity {
		pool.storeEntry(i, uint64(i))
	}
	pool.putVolatileCursor(poolTailOffset, pool.capacity)
	return pool, nil
}

// SetNonblock enables or disables the non-blocking mode of the pool.
func (p *BufferPool) SetNonblock(nonblocking bool) {
	p.nonblocking = nonblocking
}

// Cap returns the pool capacity.
func (p *BufferPool) Cap() int {
	return int(p.capacity)
}

// BufferCapacity returns the capacity of each pooled buffer.
func (p *BufferPool) BufferCapacity() int {
	return p.buffers[0].Capacity()
}

// Value returns the buffer at the given indirect index. The caller
// must have acquired the index via Get and must stop using the buffer
// once the index is handed back with Put.
func (p *BufferPool) Value(indirect int) *UnsafeBuffer {
	if indirect < 0 || indirect >= int(p.capacity) {
		panic("invalid buffer pool indirect")
	}
	return p.buffers[indirect]
}

// Get acquires a buffer and returns its indirect index. When the pool
// is empty it waits adaptively (iox.Backoff) in blocking mode —
// buffers come back on other goroutines' schedules, so OS-level
// waiting beats a hardware spin — or returns iox.ErrWouldBlock in
// non-blocking mode.
func (p *BufferPool) Get() (indirect int, err error) {
	var aw iox.Backoff
	for {
		entry, err := p.tryGet()
		if err == nil {
			return int(entry & uint64(p.mask)), nil
		}
		if err == iox.ErrWouldBlock && !p.nonblocking {
			aw.Wait()
			continue
		}
		return -1, err
	}
}

// Put hands an indirect index back to the pool. When the pool is full
// it waits adaptively in blocking mode or returns iox.ErrWouldBlock in
// non-blocking mode.
func (p *BufferPool) Put(indirect int) error {
	if indirect < 0 || indirect >= int(p.capacity) {
		panic("invalid buffer pool indirect")
	}
	entry := uint64(indirect)
	var aw iox.Backoff
	for {
		err := p.tryPut(entry)
		if err == nil {
			return nil
		}
		if err == iox.ErrWouldBlock && !p.nonblocking {
			aw.Wait()
			continue
		}
		return err
	}
}

func (p *BufferPool) tryGet() (entry uint64, err error) {
	sw := spin.Wait{}
	for {
		h, t := p.getVolatileCursor(poolHeadOffset), p.getVolatileCursor(poolTailOffset)
		hi := p.remap(h & p.mask)
		e := p.loadEntry(hi)

		if h != p.getVolatileCursor(poolHeadOffset) {
			sw.Once()
			continue
		}
		if h == t {
			return 0, iox.ErrWouldBlock
		}

		nextTurn := (h/p.capacity + 1) & poolEntryTurnMask
		if e == poolEmptyEntry(nextTurn) {
			p.casCursor(poolHeadOffset, h, h+1)
			sw.Once()
			continue
		}
		ok := p.casEntry(hi, e, poolEmptyEntry(nextTurn))
		p.casCursor(poolHeadOffset, h, h+1)
		if ok {
			return e, nil
		}
		sw.Once()
	}
}

func (p *BufferPool) tryPut(entry uint64) error {
	sw := spin.Wait{}
	for {
		h, t := p.getVolatileCursor(poolHeadOffset), p.getVolatileCursor(poolTailOffset)
		if t != p.getVolatileCursor(poolTailOffset) {
			sw.Once()
			continue
		}
		if t == h+p.capacity {
			return iox.ErrWouldBlock
		}

		turn, ti := (t/p.capacity)&poolEntryTurnMask, p.remap(t&p.mask)
		ok := p.casEntry(ti, poolEmptyEntry(turn), entry)
		p.casCursor(poolTailOffset, t, t+1)
		if ok {
			return nil
		}
		sw.Once()
	}
}

// remap transposes a cursor position within the entry array so that
// consecutive positions land on distinct cache lines.
func (p *BufferPool) remap(cursor uint32) uint32 {
	q, r := cursor/p.remapN, cursor&p.remapMask
	return r*p.remapM + q%p.remapM
}

func poolEmptyEntry(turn uint32) uint64 {
	return poolEntryEmpty | uint64(turn&poolEntryTurnMask)
}

func (p *BufferPool) entryOffset(slot uint32) int {
	return poolEntriesOffset + int(slot)*SizeOfUint64
}

// The cursor and entry words are private pool state, so they are kept
// in native order: volatile loads then agree with the compare-and-set
// accessors on every architecture.

func (p *BufferPool) loadEntry(slot uint32) uint64 {
	v, _ := p.meta.GetVolatileUint64WithOrder(p.entryOffset(slot), nativeByteOrder)
	return v
}

func (p *BufferPool) storeEntry(slot uint32, entry uint64) {
	_ = p.meta.PutVolatileUint64WithOrder(p.entryOffset(slot), entry, nativeByteOrder)
}

func (p *BufferPool) casEntry(slot uint32, expected, update uint64) bool {
	ok, _ := p.meta.CompareAndSetUint64(p.entryOffset(slot), expected, update)
	return ok
}

func (p *BufferPool) getVolatileCursor(offset int) uint32 {
	v, _ := p.meta.GetVolatileUint32WithOrder(offset, nativeByteOrder)
	return v
}

func (p *BufferPool) putVolatileCursor(offset int, value uint32) {
	_ = p.meta.PutVolatileUint32WithOrder(offset, value, nativeByteOrder)
}

func (p *BufferPool) casCursor(offset int, expected, update uint32) {
	_, _ = p.meta.CompareAndSetUint32(offset, expected, update)
}
