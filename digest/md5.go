package digest

import (
	"encoding/binary"
	"math/bits"
)

// MD5Size is the length of an MD5 digest in bytes.
const MD5Size = 16

var md5Init = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// md5Shift holds the per-round left-rotate amounts, one row per round.
var md5Shift = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// md5K is floor(abs(sin(i+1)) * 2^32) as listed in RFC 1321.
var md5K = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// MD5 is a streaming RFC 1321 engine. The zero value is not ready for use;
// create one with NewMD5 or call Reset first.
type MD5 struct {
	s [4]uint32
	block
}

// NewMD5 returns an MD5 engine holding the initialization vector.
func NewMD5() *MD5 {
	d := new(MD5)
	d.Reset()
	return d
}

// Reset restores the initialization vector.
func (d *MD5) Reset() {
	d.s = md5Init
	d.block.reset()
}

// Size returns MD5Size.
func (d *MD5) Size() int { return MD5Size }

// BlockSize returns BlockSize.
func (d *MD5) BlockSize() int { return BlockSize }

// Write feeds p into the engine.
func (d *MD5) Write(p []byte) (int, error) {
	return d.block.write(p, d.compress)
}

// WriteByte feeds a single byte into the engine.
func (d *MD5) WriteByte(c byte) error {
	return d.block.writeByte(c, d.compress)
}

// Finalize appends the 16-byte digest, each register little-endian, to dst.
func (d *MD5) Finalize(dst []byte) ([]byte, error) {
	if err := d.block.pad(binary.LittleEndian, d.compress); err != nil {
		return dst, err
	}
	for _, v := range d.s {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst, nil
}

func (d *MD5) compress(p *[BlockSize]byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i / 16 {
		case 0:
			f = (b & c) | (^b & dd)
			g = i
		case 1:
			f = (dd & b) | (^dd & c)
			g = (5*i + 1) & 15
		case 2:
			f = b ^ c ^ dd
			g = (3*i + 5) & 15
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) & 15
		}
		f += a + md5K[i] + m[g]
		a, dd, c = dd, c, b
		b += bits.RotateLeft32(f, md5Shift[i/16][i%4])
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
}

// SumMD5 returns the MD5 digest of data.
func SumMD5(data []byte) [MD5Size]byte {
	d := NewMD5()
	_, _ = d.Write(data)
	var out [MD5Size]byte
	sum, _ := d.Finalize(out[:0])
	copy(out[:], sum)
	return out
}
