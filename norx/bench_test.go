package norx

import (
	"crypto/rand"
	"testing"
)

// BenchmarkSeal measures Seal throughput for a range of plaintext sizes.
func BenchmarkSeal(b *testing.B) {
	p, err := NORX6441()
	if err != nil {
		b.Fatal(err)
	}
	a := New(p)

	key := make([]byte, p.BytesKey())
	nonce := make([]byte, p.BytesNonce())
	if _, err := rand.Read(key); err != nil {
		b.Fatal(err)
	}
	if _, err := rand.Read(nonce); err != nil {
		b.Fatal(err)
	}

	for _, size := range []int{64, 1024, 65536} {
		size := size
		b.Run(sizeLabel(size), func(b *testing.B) {
			plaintext := make([]byte, size)
			if _, err := rand.Read(plaintext); err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := a.Seal(nil, plaintext, nil, nonce, key); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkOpen measures Open throughput for a range of ciphertext sizes.
func BenchmarkOpen(b *testing.B) {
	p, err := NORX6441()
	if err != nil {
		b.Fatal(err)
	}
	a := New(p)

	key := make([]byte, p.BytesKey())
	nonce := make([]byte, p.BytesNonce())
	if _, err := rand.Read(key); err != nil {
		b.Fatal(err)
	}
	if _, err := rand.Read(nonce); err != nil {
		b.Fatal(err)
	}

	for _, size := range []int{64, 1024, 65536} {
		size := size
		b.Run(sizeLabel(size), func(b *testing.B) {
			plaintext := make([]byte, size)
			if _, err := rand.Read(plaintext); err != nil {
				b.Fatal(err)
			}
			ct, err := a.Seal(nil, plaintext, nil, nonce, key)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := a.Open(nil, ct, nil, nonce, key); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func sizeLabel(n int) string {
	switch {
	case n >= 1<<20:
		return "1MB"
	case n >= 1<<16:
		return "64KB"
	case n >= 1<<10:
		return "1KB"
	default:
		return "64B"
	}
}
