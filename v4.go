package guuid

// RandomGenerator produces version 4 UUIDs from a borrowed RandomSource.
type RandomGenerator struct {
	src RandomSource
}

// NewRandomGenerator creates a version 4 generator. A nil src selects DefaultRandom.
func NewRandomGenerator(src RandomSource) *RandomGenerator {
	if src == nil {
		src = DefaultRandom()
	}
	return &RandomGenerator{src: src}
}

// New generates a version 4 UUID: 122 random bits plus version and variant.
func (g *RandomGenerator) New() UUID {
	var uuid UUID
	fillRandom(&uuid, g.src)
	uuid.setVersion(VersionRandom)
	return uuid
}

// NewV4 generates a version 4 UUID from the default random source.
func NewV4() UUID {
	return NewRandomGenerator(nil).New()
}
