package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeHann, n)
			}
		})
		b.Run("blackmanharris/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeBlackmanHarris, n)
			}
		})
		b.Run("kaiser/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeKaiser, n, WithAlpha(8))
			}
		})
		b.Run("lanczos/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Lanczos(n, false)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				_ = Apply(TypeHann, buf)
			}
		})
		b.Run("cached/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			c, err := NewCached(TypeHann, n)
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				_ = c.Apply(buf)
			}
		})
	}
}
