package guuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value stored in big-endian (network) byte order.
// Values are compared byte by byte, so UUID can be used directly as a map key.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionTimeReordered // UUIDv6
	VersionTimeSorted    // UUIDv7
	VersionCustom        // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
	VariantNil
	VariantMax
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	case VariantFuture:
		return "reserved"
	case VariantNil:
		return "nil"
	case VariantMax:
		return "max"
	default:
		return fmt.Sprintf("Variant(%d)", byte(v))
	}
}

var (
	// Nil is the nil UUID (all zeros)
	Nil UUID

	// Max is the max UUID (all ones)
	Max = UUID{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// Version returns the version of the UUID, the high nibble of byte 6
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID. The nil and max UUIDs report
// VariantNil and VariantMax instead of the variant their bits would select.
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		if u.IsNil() {
			return VariantNil
		}
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		if u.IsMax() {
			return VariantMax
		}
		return VariantFuture
	}
}

// setVersion stamps the version nibble and the RFC 4122 variant bits.
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Hyphens are skipped wherever they appear and hex digits may be upper or
// lower case. Whatever the error, the returned UUID is Nil, so callers that
// only want the fail-soft behaviour can ignore the error (see FromString).
func Parse(s string) (UUID, error) {
	var uuid UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	open := strings.HasPrefix(s, "{")
	closed := strings.HasSuffix(s, "}")
	if open != closed {
		return Nil, ErrInvalidBrace
	}
	if open {
		s = s[1 : len(s)-1]
	}

	index := 0
	high := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			continue
		}
		v, ok := fromHexChar(c)
		if !ok {
			return Nil, ErrInvalidFormat
		}
		if index >= len(uuid) {
			return Nil, ErrInvalidLength
		}
		if high {
			uuid[index] = v << 4
		} else {
			uuid[index] |= v
			index++
		}
		high = !high
	}

	if !high {
		return Nil, ErrInvalidFormat
	}
	if index < len(uuid) {
		return Nil, ErrInvalidLength
	}
	return uuid, nil
}

// FromString is the fail-soft form of Parse: malformed input yields Nil.
func FromString(s string) UUID {
	uuid, _ := Parse(s)
	return uuid
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// fromHexChar converts a hex character into its value
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if the UUID is the max UUID (all ones)
func (u UUID) IsMax() bool {
	return u == Max
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Binary wraps a UUID so that it is stored as its raw 16 bytes, which suits
// BINARY(16) and BLOB columns. Scanning accepts the same inputs as UUID.Scan.
type Binary struct {
	UUID
}

// Value implements the driver.Valuer interface
func (b Binary) Value() (driver.Value, error) {
	return b.UUID.Bytes(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether u sorts before other
func (u UUID) Less(other UUID) bool {
	return u.Compare(other) < 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
