package guuid

import (
	"encoding/binary"
	"time"
)

// gregorianOffset is the number of 100ns intervals between the Gregorian
// reform (1582-10-15) and the Unix epoch.
const gregorianOffset = 0x01b21dd213814000

// V6Generator produces version 6 UUIDs: the 60-bit Gregorian timestamp of
// version 1 reordered most significant bits first, so that the UUIDs sort by
// time, followed by a random clock sequence and a random node.
type V6Generator struct {
	src   RandomSource
	clock Clock
}

// NewV6Generator creates a version 6 generator. A nil src selects
// DefaultRandom and a nil clock selects SystemClock.
func NewV6Generator(src RandomSource, clock Clock) *V6Generator {
	if src == nil {
		src = DefaultRandom()
	}
	if clock == nil {
		clock = SystemClock
	}
	return &V6Generator{src: src, clock: clock}
}

// New generates a version 6 UUID stamped with the generator's clock.
func (g *V6Generator) New() UUID {
	return g.NewWithTime(g.clock.Now())
}

// NewWithTime generates a version 6 UUID for the given time point.
// Times before the Gregorian reform (1582-10-15) are stamped as the reform.
//
//	time_high (32) | time_mid (16) | ver (4) | time_low (12) |
//	var (2) | clock_seq (14) | node (48)
func (g *V6Generator) NewWithTime(t time.Time) UUID {
	var uuid UUID
	fillRandom(&uuid, g.src)

	ts := gregorianTimestamp(t)
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ts>>28))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ts>>12))
	uuid[6] = byte(ts>>8) & 0x0f
	uuid[7] = byte(ts)

	// A random node must have the multicast bit set (RFC 9562 section 6.10).
	uuid[10] |= 0x01

	uuid.setVersion(VersionTimeReordered)
	return uuid
}

// NewV6 generates a version 6 UUID from the default random source and the system clock.
func NewV6() UUID {
	return NewV6Generator(nil, nil).New()
}

// gregorianTimestamp converts t to 100ns intervals since 1582-10-15, truncated
// to 60 bits. Earlier times give 0.
func gregorianTimestamp(t time.Time) uint64 {
	ticks := t.Unix()*1e7 + int64(t.Nanosecond()/100) + gregorianOffset
	if ticks < 0 {
		return 0
	}
	return uint64(ticks) & (1<<60 - 1)
}

// gregorianTime reverses gregorianTimestamp for a version 6 layout.
func (u UUID) gregorianTime() time.Time {
	ts := uint64(binary.BigEndian.Uint32(u[0:4]))<<28 |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<12 |
		uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)
	ticks := int64(ts) - gregorianOffset
	return time.Unix(ticks/1e7, (ticks%1e7)*100)
}
