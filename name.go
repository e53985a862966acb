package guuid

import (
	"fmt"

	"github.com/Lzww0608/guuid/v2/digest"
)

// Well-known namespaces from RFC 4122 Appendix C.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NameGenerator derives name-based UUIDs by hashing a fixed namespace UUID
// followed by a name. A fresh hash engine is created for every call, so a
// NameGenerator is safe for concurrent use.
type NameGenerator[H digest.Hash] struct {
	namespace UUID
	version   Version
	newHash   func() H
}

// NewNameGenerator creates a name-based generator over an arbitrary hash.
// The namespace is not validated. newHash must return a reset engine whose
// digest is at least 16 bytes long.
func NewNameGenerator[H digest.Hash](namespace UUID, version Version, newHash func() H) (*NameGenerator[H], error) {
	if version > 0x0f {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	if size := newHash().Size(); size < 16 {
		return nil, fmt.Errorf("%w: got %d", ErrShortDigest, size)
	}
	return &NameGenerator[H]{
		namespace: namespace,
		version:   version,
		newHash:   newHash,
	}, nil
}

// NewV3Generator returns an MD5 (version 3) generator for namespace.
func NewV3Generator(namespace UUID) *NameGenerator[*digest.MD5] {
	return &NameGenerator[*digest.MD5]{
		namespace: namespace,
		version:   VersionNameBasedMD5,
		newHash:   digest.NewMD5,
	}
}

// NewV5Generator returns a SHA-1 (version 5) generator for namespace.
func NewV5Generator(namespace UUID) *NameGenerator[*digest.SHA1] {
	return &NameGenerator[*digest.SHA1]{
		namespace: namespace,
		version:   VersionNameBasedSHA1,
		newHash:   digest.NewSHA1,
	}
}

// Namespace returns the namespace UUID the generator was created with.
func (g *NameGenerator[H]) Namespace() UUID {
	return g.namespace
}

// Generate derives the UUID for a name given as a string; its bytes are
// hashed as they are.
func (g *NameGenerator[H]) Generate(name string) UUID {
	h := g.begin()
	_, _ = h.Write([]byte(name))
	return g.finish(h)
}

// GenerateBytes derives the UUID for a raw byte name.
func (g *NameGenerator[H]) GenerateBytes(name []byte) UUID {
	h := g.begin()
	_, _ = h.Write(name)
	return g.finish(h)
}

// GenerateUTF16 derives the UUID for a name of 16-bit code units. Each unit
// is widened to 32 bits on its own, surrogates included, and fed like a rune,
// so a name without surrogate pairs hashes the same as GenerateRunes.
func (g *NameGenerator[H]) GenerateUTF16(name []uint16) UUID {
	h := g.begin()
	for _, c := range name {
		writeWide(h, uint32(c))
	}
	return g.finish(h)
}

// GenerateRunes derives the UUID for a name of 32-bit characters, each fed
// as four bytes, low byte first.
func (g *NameGenerator[H]) GenerateRunes(name []rune) UUID {
	h := g.begin()
	for _, r := range name {
		writeWide(h, uint32(r))
	}
	return g.finish(h)
}

// writeWide feeds one wide character as four bytes, low byte first.
func writeWide(h digest.Hash, c uint32) {
	_ = h.WriteByte(byte(c))
	_ = h.WriteByte(byte(c >> 8))
	_ = h.WriteByte(byte(c >> 16))
	_ = h.WriteByte(byte(c >> 24))
}

func (g *NameGenerator[H]) begin() H {
	h := g.newHash()
	_, _ = h.Write(g.namespace[:])
	return h
}

// finish takes the first 16 digest bytes and stamps version and variant.
func (g *NameGenerator[H]) finish(h H) UUID {
	var buf [32]byte
	sum, _ := h.Finalize(buf[:0])

	var uuid UUID
	copy(uuid[:], sum)
	uuid.setVersion(g.version)
	return uuid
}

// NewV3 returns the version 3 (MD5) UUID of name within namespace.
func NewV3(namespace UUID, name string) UUID {
	return NewV3Generator(namespace).Generate(name)
}

// NewV5 returns the version 5 (SHA-1) UUID of name within namespace.
func NewV5(namespace UUID, name string) UUID {
	return NewV5Generator(namespace).Generate(name)
}
