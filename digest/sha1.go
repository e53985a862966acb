package digest

import (
	"encoding/binary"
	"math/bits"
)

// SHA1Size is the length of a SHA-1 digest in bytes.
const SHA1Size = 20

var sha1Init = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

const (
	sha1K0 = 0x5a827999
	sha1K1 = 0x6ed9eba1
	sha1K2 = 0x8f1bbcdc
	sha1K3 = 0xca62c1d6
)

// SHA1 is a streaming FIPS 180-1 engine. The zero value is not ready for
// use; create one with NewSHA1 or call Reset first.
type SHA1 struct {
	s [5]uint32
	block
}

// NewSHA1 returns a SHA-1 engine holding the initialization vector.
func NewSHA1() *SHA1 {
	d := new(SHA1)
	d.Reset()
	return d
}

// Reset restores the initialization vector.
func (d *SHA1) Reset() {
	d.s = sha1Init
	d.block.reset()
}

// Size returns SHA1Size.
func (d *SHA1) Size() int { return SHA1Size }

// BlockSize returns BlockSize.
func (d *SHA1) BlockSize() int { return BlockSize }

// Write feeds p into the engine.
func (d *SHA1) Write(p []byte) (int, error) {
	return d.block.write(p, d.compress)
}

// WriteByte feeds a single byte into the engine.
func (d *SHA1) WriteByte(c byte) error {
	return d.block.writeByte(c, d.compress)
}

// Finalize appends the 20-byte digest, each register big-endian, to dst.
func (d *SHA1) Finalize(dst []byte) ([]byte, error) {
	if err := d.block.pad(binary.BigEndian, d.compress); err != nil {
		return dst, err
	}
	for _, v := range d.s {
		dst = binary.BigEndian.AppendUint32(dst, v)
	}
	return dst, nil
}

func (d *SHA1) compress(p *[BlockSize]byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f, k = (b&c)|(^b&dd), sha1K0
		case i < 40:
			f, k = b^c^dd, sha1K1
		case i < 60:
			f, k = (b&c)|(b&dd)|(c&dd), sha1K2
		default:
			f, k = b^c^dd, sha1K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
	d.s[4] += e
}

// SumSHA1 returns the SHA-1 digest of data.
func SumSHA1(data []byte) [SHA1Size]byte {
	d := NewSHA1()
	_, _ = d.Write(data)
	var out [SHA1Size]byte
	sum, _ := d.Finalize(out[:0])
	copy(out[:], sum)
	return out
}
