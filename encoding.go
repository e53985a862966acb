package guuid

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/oklog/ulid/v2"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// EncodeToBase32 encodes the UUID to the 26 character Crockford base32 form
// used by ULIDs. The encoding preserves byte order, so encoded version 7 and
// version 6 UUIDs sort in time order as strings.
func (u UUID) EncodeToBase32() string {
	return ulid.ULID(u).String()
}

// DecodeFromHex decodes a hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 32 {
		return uuid, ErrInvalidFormat
	}
	_, err := hex.Decode(uuid[:], []byte(s))
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return uuid, nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	var uuid UUID
	data, err := enc.DecodeString(s)
	if err != nil {
		return uuid, ErrInvalidFormat
	}
	if len(data) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], data)
	return uuid, nil
}

// DecodeFromBase32 decodes a Crockford base32 string produced by EncodeToBase32
func DecodeFromBase32(s string) (UUID, error) {
	if len(s) != ulid.EncodedSize {
		return Nil, ErrInvalidLength
	}
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return UUID(id), nil
}

// FromBytes creates a UUID from a byte slice. The bytes are copied verbatim;
// only the length is checked.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
