package benchmark

import (
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/go_address_splitter/internal/adapters/normalizer"
	"github.com/baditaflorin/go_address_splitter/pkg/address"
	"github.com/baditaflorin/l"
)

// benchmark addresses spanning the three distribution strategies
var benchAddresses = []string{
	"123 Main Street, Apartment 4B, Springfield, IL 62701, United States",
	"Building A, Floor 3, Office 302, Tech Park, Whitefield, Bangalore, Karnataka, India 560066",
	"1600 Pennsylvania Avenue Northwest, Washington DC 20500",
	"123 Short St",
	"PlotNo45SectorTwelveNearCityMallGurgaonHaryana122001",
}

// generateAddress creates a long comma-separated address of roughly the
// specified size by repeating sample segments
func generateAddress(size int) string {
	sample := "Plot No. 45, Sector 12, Near City Mall, Gurgaon, Haryana 122001"
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sample)
	}

	return sb.String()
}

func newBenchSplitter(b *testing.B, opts ...address.SplitterOption) *address.Splitter {
	b.Helper()

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output: io.Discard,
	})
	if err != nil {
		b.Fatal(err)
	}

	splitter, err := address.New(append(opts, address.WithLogger(logger))...)
	if err != nil {
		b.Fatal(err)
	}
	return splitter
}

func BenchmarkSplit(b *testing.B) {
	splitter := newBenchSplitter(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = splitter.Split(benchAddresses[i%len(benchAddresses)])
	}
}

func BenchmarkSplitOptimizedNormalizer(b *testing.B) {
	splitter := newBenchSplitter(b, address.WithOptimizedNormalizer())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = splitter.Split(benchAddresses[i%len(benchAddresses)])
	}
}

func BenchmarkSplitLargeAddress(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"1KB", 1024},
		{"10KB", 10 * 1024},
		{"100KB", 100 * 1024},
	}

	for _, sc := range sizes {
		input := generateAddress(sc.size)
		splitter := newBenchSplitter(b, address.WithOptimizedNormalizer())

		b.Run(sc.name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				_ = splitter.Split(input)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	input := "  123   Main Street,\tApartment 4B,\n Springfield,  IL 62701 "

	b.Run("Default", func(b *testing.B) {
		n := normalizer.NewDefaultNormalizer()
		for i := 0; i < b.N; i++ {
			_ = n.Normalize(input)
		}
	})

	b.Run("Optimized", func(b *testing.B) {
		n := normalizer.NewOptimizedNormalizer()
		for i := 0; i < b.N; i++ {
			_ = n.Normalize(input)
		}
	})
}
