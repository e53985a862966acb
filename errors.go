package guuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string contains a character that
	// is neither a hex digit nor a hyphen, or ends on half a byte
	ErrInvalidFormat = errors.New("guuid: invalid UUID format")

	// ErrInvalidBrace indicates that only one of the enclosing braces is present
	ErrInvalidBrace = errors.New("guuid: unbalanced braces in UUID string")

	// ErrInvalidLength indicates that the input does not describe exactly 16 bytes
	ErrInvalidLength = errors.New("guuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("guuid: invalid or unsupported UUID version")

	// ErrShortDigest indicates that a hash algorithm produces fewer than 16 bytes
	ErrShortDigest = errors.New("guuid: hash digest shorter than 16 bytes")
)
