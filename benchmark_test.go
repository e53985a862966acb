package guuid

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = New()
		}
	})
}

func BenchmarkGenerator_Modes(b *testing.B) {
	for _, mode := range []Monotonicity{
		MonotonicityBase,
		MonotonicitySubMilli,
		MonotonicityCounter,
		MonotonicitySubMilliCounter,
	} {
		b.Run(mode.String(), func(b *testing.B) {
			gen := NewGenerator(WithMonotonicity(mode))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = gen.New()
			}
		})
	}
}

func BenchmarkNewV4(b *testing.B) {
	gen := NewRandomGenerator(nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gen.New()
	}
}

func BenchmarkNewV6(b *testing.B) {
	gen := NewV6Generator(nil, nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gen.New()
	}
}

func BenchmarkNewV3(b *testing.B) {
	gen := NewV3Generator(NamespaceDNS)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate("www.example.com")
	}
}

func BenchmarkNewV5(b *testing.B) {
	gen := NewV5Generator(NamespaceDNS)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate("www.example.com")
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Braced(b *testing.B) {
	s := "{f47ac10b-58cc-4372-a567-0e02b2c3d479}"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_MarshalText(b *testing.B) {
	uuid := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalText(b *testing.B) {
	text := []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var uuid UUID
		err := uuid.UnmarshalText(text)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToBase32(b *testing.B) {
	uuid := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase32()
	}
}

func BenchmarkUUID_Compare(b *testing.B) {
	uuid1 := New()
	uuid2 := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid1.Compare(uuid2)
	}
}

// Benchmark concurrent generation
func BenchmarkGenerator_NewConcurrent(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gen.New()
		}
	})
}
