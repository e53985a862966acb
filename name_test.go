package guuid

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/Lzww0608/guuid/v2/digest"
)

func TestNewV3_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		namespace UUID
		input     string
		want      string
	}{
		{"rfc dns example", NamespaceDNS, "www.example.com", "5df41881-3aed-3515-88a7-2f4a814cf09e"},
		{"python.org", NamespaceDNS, "python.org", "6fa459ea-ee8a-3ca4-894e-db77e160355e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewV3(tt.namespace, tt.input)
			if got.String() != tt.want {
				t.Errorf("NewV3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewV5_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		namespace UUID
		input     string
		want      string
	}{
		{"rfc dns example", NamespaceDNS, "www.example.com", "2ed6657d-e927-568b-95e1-2665a8aea6a2"},
		{"python.org", NamespaceDNS, "python.org", "886313e1-3b8a-5372-9b90-0c9aee199e5d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewV5(tt.namespace, tt.input)
			if got.String() != tt.want {
				t.Errorf("NewV5() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNameGenerator_VersionAndVariant(t *testing.T) {
	v3 := NewV3Generator(NamespaceURL)
	v5 := NewV5Generator(NamespaceURL)
	for _, name := range []string{"", "a", "https://example.com/a/very/long/path/that/spans/more/than/one/block/of/input"} {
		if got := v3.Generate(name); got.Version() != VersionNameBasedMD5 || got.Variant() != VariantRFC4122 {
			t.Errorf("v3 Generate(%q) = %v: version %v variant %v", name, got, got.Version(), got.Variant())
		}
		if got := v5.Generate(name); got.Version() != VersionNameBasedSHA1 || got.Variant() != VariantRFC4122 {
			t.Errorf("v5 Generate(%q) = %v: version %v variant %v", name, got, got.Version(), got.Variant())
		}
	}
}

func TestNameGenerator_Deterministic(t *testing.T) {
	gen := NewV5Generator(NamespaceOID)
	if gen.Namespace() != NamespaceOID {
		t.Errorf("Namespace() = %v, want %v", gen.Namespace(), NamespaceOID)
	}
	a := gen.Generate("1.3.6.1")
	b := gen.Generate("1.3.6.1")
	if a != b {
		t.Errorf("Generate() not deterministic: %v != %v", a, b)
	}
	if a != NewV5(NamespaceOID, "1.3.6.1") {
		t.Error("NewV5() disagrees with NewV5Generator().Generate()")
	}
	if a == gen.Generate("1.3.6.2") {
		t.Error("different names produced the same UUID")
	}
	if a == NewV5Generator(NamespaceX500).Generate("1.3.6.1") {
		t.Error("different namespaces produced the same UUID")
	}
}

func TestNameGenerator_GenerateBytes(t *testing.T) {
	gen := NewV3Generator(NamespaceDNS)
	if gen.GenerateBytes([]byte("www.example.com")) != gen.Generate("www.example.com") {
		t.Error("GenerateBytes() disagrees with Generate()")
	}
}

func TestNameGenerator_WideCharacters(t *testing.T) {
	gen := NewV5Generator(NamespaceDNS)
	name := "www.example.com/ü"

	// every unit is widened to four bytes, low byte first
	units := utf16.Encode([]rune(name))
	var wide16 []byte
	for _, c := range units {
		wide16 = append(wide16, byte(c), byte(c>>8), 0, 0)
	}
	if got, want := gen.GenerateUTF16(units), gen.GenerateBytes(wide16); got != want {
		t.Errorf("GenerateUTF16() = %v, want %v", got, want)
	}
	if got, want := gen.GenerateUTF16([]uint16{'a', 'b'}), gen.GenerateBytes([]byte{'a', 0, 0, 0, 'b', 0, 0, 0}); got != want {
		t.Errorf("GenerateUTF16(ab) = %v, want %v", got, want)
	}

	var le32 []byte
	for _, r := range name {
		le32 = append(le32, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}
	if got, want := gen.GenerateRunes([]rune(name)), gen.GenerateBytes(le32); got != want {
		t.Errorf("GenerateRunes() = %v, want %v", got, want)
	}

	if got, want := gen.GenerateUTF16(units), gen.GenerateRunes([]rune(name)); got != want {
		t.Errorf("GenerateUTF16() = %v, want GenerateRunes() %v", got, want)
	}
	if gen.GenerateUTF16(units) == gen.Generate(name) {
		t.Error("wide and narrow names of the same text should differ")
	}

	// surrogate halves are widened one by one, not decoded
	pair := utf16.Encode([]rune{0x1F600})
	if gen.GenerateUTF16(pair) == gen.GenerateRunes([]rune{0x1F600}) {
		t.Error("GenerateUTF16() decoded a surrogate pair")
	}
	if got, want := gen.GenerateUTF16(pair), gen.GenerateRunes([]rune{rune(pair[0]), rune(pair[1])}); got != want {
		t.Errorf("GenerateUTF16(surrogates) = %v, want %v", got, want)
	}
}

// shortHash pretends to produce a digest too short for a UUID.
type shortHash struct {
	*digest.MD5
}

func (shortHash) Size() int { return 8 }

func TestNewNameGenerator(t *testing.T) {
	gen, err := NewNameGenerator(NamespaceDNS, VersionCustom, digest.NewSHA1)
	if err != nil {
		t.Fatalf("NewNameGenerator() error = %v", err)
	}
	got := gen.Generate("www.example.com")
	if got.Version() != VersionCustom {
		t.Errorf("Version() = %v, want %v", got.Version(), VersionCustom)
	}
	// Only the version nibble differs from the v5 result.
	want := NewV5(NamespaceDNS, "www.example.com")
	want[6] = want[6]&0x0f | 0x80
	if got != want {
		t.Errorf("Generate() = %v, want %v", got, want)
	}

	if _, err := NewNameGenerator(NamespaceDNS, 16, digest.NewSHA1); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("NewNameGenerator() error = %v, want %v", err, ErrInvalidVersion)
	}

	newShort := func() shortHash { return shortHash{digest.NewMD5()} }
	if _, err := NewNameGenerator(NamespaceDNS, VersionNameBasedMD5, newShort); !errors.Is(err, ErrShortDigest) {
		t.Errorf("NewNameGenerator() error = %v, want %v", err, ErrShortDigest)
	}
}

func TestNameGenerator_ArbitraryNamespace(t *testing.T) {
	// Any 128-bit value is accepted as a namespace and simply hashed.
	for _, ns := range []UUID{Nil, Max, {0xde, 0xad}} {
		if got := NewV3(ns, "x"); got.Version() != VersionNameBasedMD5 {
			t.Errorf("NewV3(%v) version = %v", ns, got.Version())
		}
	}
}
