// Package digest implements the streaming MD5 and SHA-1 engines used to derive
// name-based (version 3 and 5) UUIDs.
//
// The engines are deterministic mixing functions, not secure hashes. Each one
// is a single-goroutine state machine: bytes are fed with Write or WriteByte,
// and Finalize pads the message, runs the last compression pass and appends
// the digest. Finalize is destructive. After it has been called every further
// Write, WriteByte or Finalize returns ErrFinalized until Reset is called.
package digest

import (
	"encoding/binary"
	"errors"
)

// BlockSize is the compression block size of MD5 and SHA-1 in bytes.
const BlockSize = 64

// ErrFinalized is returned when an engine is used after Finalize without an
// intervening Reset.
var ErrFinalized = errors.New("digest: engine already finalized, call Reset before reuse")

// Hash is the capability a name-based UUID generator needs from a hash
// algorithm.
type Hash interface {
	// Reset restores the algorithm's initialization vector and clears the
	// block buffer, the byte counter and the finalized flag.
	Reset()

	// WriteByte feeds a single byte.
	WriteByte(c byte) error

	// Write feeds p. It never returns a short count unless the engine is
	// finalized, in which case it returns 0 and ErrFinalized.
	Write(p []byte) (int, error)

	// Finalize pads the message, appends the digest to dst and returns the
	// resulting slice.
	Finalize(dst []byte) ([]byte, error)

	// Size returns the digest length in bytes.
	Size() int

	// BlockSize returns the compression block size in bytes.
	BlockSize() int
}

// block holds the Merkle–Damgård bookkeeping shared by MD5 and SHA-1: the
// partially filled block, the number of bytes fed so far and the one-shot
// guard.
type block struct {
	buf       [BlockSize]byte
	index     int
	length    uint64
	finalized bool
}

func (b *block) reset() {
	b.buf = [BlockSize]byte{}
	b.index = 0
	b.length = 0
	b.finalized = false
}

// write buffers p and hands every full block to compress.
func (b *block) write(p []byte, compress func(*[BlockSize]byte)) (int, error) {
	if b.finalized {
		return 0, ErrFinalized
	}
	n := len(p)
	b.length += uint64(n)
	for len(p) > 0 {
		c := copy(b.buf[b.index:], p)
		b.index += c
		p = p[c:]
		if b.index == BlockSize {
			compress(&b.buf)
			b.index = 0
		}
	}
	return n, nil
}

func (b *block) writeByte(c byte, compress func(*[BlockSize]byte)) error {
	if b.finalized {
		return ErrFinalized
	}
	b.length++
	b.buf[b.index] = c
	b.index++
	if b.index == BlockSize {
		compress(&b.buf)
		b.index = 0
	}
	return nil
}

// pad appends 0x80, zero fills up to offset 56 (spilling into an extra block
// when fewer than 8 bytes remain) and stores the message length in bits in
// the last 8 bytes using order.
func (b *block) pad(order binary.ByteOrder, compress func(*[BlockSize]byte)) error {
	if b.finalized {
		return ErrFinalized
	}
	bits := b.length << 3

	b.buf[b.index] = 0x80
	b.index++
	if b.index > BlockSize-8 {
		clear(b.buf[b.index:])
		compress(&b.buf)
		b.index = 0
	}
	clear(b.buf[b.index : BlockSize-8])
	order.PutUint64(b.buf[BlockSize-8:], bits)
	compress(&b.buf)

	b.index = 0
	b.finalized = true
	return nil
}
