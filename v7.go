package guuid

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

// Monotonicity selects how a Generator orders UUIDs created within the same
// millisecond.
type Monotonicity int

const (
	// MonotonicityBase fills everything after the 48-bit timestamp with random bits.
	MonotonicityBase Monotonicity = iota
	// MonotonicitySubMilli stores the 12-bit fraction of the millisecond in rand_a.
	MonotonicitySubMilli
	// MonotonicityCounter stores a 12-bit per-millisecond counter in rand_a.
	MonotonicityCounter
	// MonotonicitySubMilliCounter combines the fraction in rand_a with a 14-bit
	// counter in the top of rand_b.
	MonotonicitySubMilliCounter
)

const (
	maxTimestamp      = 1<<48 - 1
	maxCounter        = 0xfff
	maxSubMilliCount  = 0x3fff
	subMilliPrecision = 4096
)

var monotonicityNames = map[Monotonicity]string{
	MonotonicityBase:            "base",
	MonotonicitySubMilli:        "submilli",
	MonotonicityCounter:         "counter",
	MonotonicitySubMilliCounter: "submilli-counter",
}

func (m Monotonicity) String() string {
	if name, ok := monotonicityNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Monotonicity(%d)", int(m))
}

// ParseMonotonicity converts a name produced by Monotonicity.String back into a mode.
func ParseMonotonicity(s string) (Monotonicity, error) {
	for m, name := range monotonicityNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("guuid: unknown monotonicity %q", s)
}

// Generator is a thread-safe UUIDv7 generator. In the counter modes it keeps
// the last clock tick and a counter so that UUIDs generated within the same
// tick are strictly increasing.
type Generator struct {
	mu       sync.Mutex
	mode     Monotonicity
	src      RandomSource
	clock    Clock
	lastTick uint64 // milliseconds, or milliseconds<<12|fraction in MonotonicitySubMilliCounter
	counter  uint16
	started  bool // lastTick holds a stamped tick
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMonotonicity sets the ordering mode (MonotonicityCounter by default).
func WithMonotonicity(m Monotonicity) GeneratorOption {
	return func(g *Generator) {
		g.mode = m
	}
}

// WithRandom sets the random source. It is only read while the generator's
// lock is held, so an unsynchronised source may be passed if it is not
// shared elsewhere.
func WithRandom(src RandomSource) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithClock sets the clock used by New.
func WithClock(c Clock) GeneratorOption {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// NewGenerator creates a new UUIDv7 generator. Without options it uses the
// default random source, the system clock and MonotonicityCounter.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		mode:  MonotonicityCounter,
		src:   DefaultRandom(),
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Monotonicity returns the generator's ordering mode.
func (g *Generator) Monotonicity() Monotonicity {
	return g.mode
}

// New generates a new UUIDv7 stamped with the generator's clock.
func (g *Generator) New() UUID {
	return g.NewWithTime(g.clock.Now())
}

// NewWithTime generates a new UUIDv7 for the given time point.
// Times before the Unix epoch are stamped as the epoch.
func (g *Generator) NewWithTime(t time.Time) UUID {
	var uuid UUID

	ms := t.UnixMilli()
	if ms < 0 {
		ms = 0
	}
	timestamp := uint64(ms) & maxTimestamp

	g.mu.Lock()
	defer g.mu.Unlock()

	fillRandom(&uuid, g.src)

	switch g.mode {
	case MonotonicitySubMilli:
		putTimestamp(&uuid, timestamp)
		putRandA(&uuid, subMilliFraction(t))
	case MonotonicityCounter:
		tick := g.advance(timestamp, maxCounter)
		putTimestamp(&uuid, tick)
		putRandA(&uuid, g.counter)
	case MonotonicitySubMilliCounter:
		tick := g.advance(timestamp<<12|uint64(subMilliFraction(t)), maxSubMilliCount)
		putTimestamp(&uuid, tick>>12)
		putRandA(&uuid, uint16(tick&0xfff))
		uuid[8] = byte(g.counter >> 8)
		uuid[9] = byte(g.counter)
	default:
		putTimestamp(&uuid, timestamp)
	}

	uuid.setVersion(VersionTimeSorted)
	return uuid
}

// advance moves the generator state to tick and returns the tick to stamp.
// A tick that repeats or moves backwards reuses the last tick and bumps the
// counter; when the counter passes limit the last tick itself is bumped.
func (g *Generator) advance(tick uint64, limit uint16) uint64 {
	if g.started && tick <= g.lastTick {
		g.counter++
		if g.counter > limit {
			g.counter = 0
			g.lastTick++
		}
		return g.lastTick
	}
	g.started = true
	g.lastTick = tick
	g.counter = 0
	return tick
}

// putTimestamp writes the 48-bit millisecond timestamp into bytes 0-5
func putTimestamp(u *UUID, ms uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ms<<16)
	copy(u[0:6], buf[0:6])
}

// putRandA writes a 12-bit value below the version nibble in bytes 6-7
func putRandA(u *UUID, v uint16) {
	u[6] = byte(v>>8) & 0x0f
	u[7] = byte(v)
}

// subMilliFraction scales the microseconds within the millisecond to 12 bits
func subMilliFraction(t time.Time) uint16 {
	micros := uint64(t.Nanosecond()/1000) % 1000
	return uint16(micros * subMilliPrecision / 1000)
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guuid.Must(guuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

var (
	defaultGeneratorOnce sync.Once
	defaultGenerator     *Generator
)

// DefaultGenerator returns the package-level generator used by New and NewV7.
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// New generates a new UUIDv7 using the default generator.
// This is a convenience function that uses the package-level generator.
func New() UUID {
	return DefaultGenerator().New()
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() UUID {
	return DefaultGenerator().New()
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the embedded timestamp of a UUIDv7 or UUIDv6 as a time.Time.
// Other versions return the zero time.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeSorted:
		return time.UnixMilli(u.Timestamp())
	case VersionTimeReordered:
		return u.gregorianTime()
	default:
		return time.Time{}
	}
}
