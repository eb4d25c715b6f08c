// Package shmring is a single-producer, single-consumer byte ring.
// One side may run in interrupt context: neither side blocks or allocates.
package shmring

import "sync/atomic"

type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)
}

// New allocates a ring of the given power-of-two size (>= 2).
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic("shmring: size must be power of two >= 2")
	}
	return &Ring{
		buf:  make([]byte, size),
		mask: uint32(size - 1),
	}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Available is the number of bytes the consumer can read.
func (r *Ring) Available() int { return int(r.wr.Load() - r.rd.Load()) }

// TryWrite copies as much of src as fits and returns the count.
func (r *Ring) TryWrite(src []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	n := int(r.size() - (wr - rd))
	if n > len(src) {
		n = len(src)
	}
	if n <= 0 {
		return 0
	}
	idx := wr & r.mask
	first := copy(r.buf[idx:], src[:n])
	copy(r.buf, src[first:n])
	r.wr.Store(wr + uint32(n))
	return n
}

// TryRead copies up to len(dst) buffered bytes and returns the count.
func (r *Ring) TryRead(dst []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	n := int(wr - rd)
	if n > len(dst) {
		n = len(dst)
	}
	if n <= 0 {
		return 0
	}
	idx := rd & r.mask
	end := idx + uint32(n)
	if end > r.size() {
		end = r.size()
	}
	first := copy(dst[:n], r.buf[idx:end])
	copy(dst[first:n], r.buf)
	r.rd.Store(rd + uint32(n))
	return n
}
