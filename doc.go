// Package guuid generates and manipulates Universally Unique Identifiers as
// defined by RFC 4122 and RFC 9562.
//
// A UUID is a 16 byte value in network byte order. It is immutable, comparable
// with == and usable as a map key; Compare orders UUIDs as 128-bit unsigned
// integers. Five generation strategies are provided:
//   - version 3 and 5: name-based, MD5 or SHA-1 over a namespace UUID and a name
//   - version 4: random
//   - version 6: Gregorian timestamp reordered for sorting
//   - version 7: Unix millisecond timestamp with optional sub-millisecond
//     precision and a per-generator counter
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id := guuid.New()
//	fmt.Println(id.String())
//
//	// Derive a deterministic UUIDv5
//	id = guuid.NewV5(guuid.NamespaceDNS, "www.example.com")
//
//	// Parse a UUID from string
//	id, err := guuid.Parse("{f47ac10b-58cc-4372-a567-0e02b2c3d479}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse always returns Nil when it fails, so FromString can be used where a
// malformed input should simply become the nil UUID.
//
// Custom Generator:
//
//	gen := guuid.NewGenerator(
//	    guuid.WithMonotonicity(guuid.MonotonicitySubMilliCounter),
//	    guuid.WithRandom(guuid.NewSeededRandom(seed)),
//	)
//	for i := 0; i < 1000; i++ {
//	    id := gen.New()
//	    // Use id...
//	}
//
// Thread Safety:
//
// UUID values can be shared freely. The v7 Generator guards its counter state
// and its random draws with a mutex. The name-based generators create a new
// hash engine per call. RandomGenerator and V6Generator do not lock; the
// default random source is internally synchronised, an injected source must be
// safe for the way the generator is shared.
package guuid
