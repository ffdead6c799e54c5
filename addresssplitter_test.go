// addresssplitter_test.go
package addresssplitter

import (
	"testing"

	"github.com/baditaflorin/go_address_splitter/internal/adapters/normalizer"
)

func TestSplitWithDefaults(t *testing.T) {
	tests := []struct {
		name    string
		address string
		line1   string
		line2   string
		line3   string
	}{
		{
			name:    "Typical five segment address",
			address: "123 Main Street, Apartment 4B, Springfield, IL 62701, United States",
			line1:   "123 Main Street, Apartment 4B",
			line2:   "Springfield, IL 62701",
			line3:   "United States",
		},
		{
			name:    "Empty address",
			address: "",
			line1:   "",
			line2:   "",
			line3:   "",
		},
		{
			name:    "Short address",
			address: "123 Short St",
			line1:   "123",
			line2:   "Short",
			line3:   "St",
		},
		{
			name:    "Irregular whitespace",
			address: "  Flat 301,\n Krishna Towers,\tMG Road,  Bangalore 560001 ",
			line1:   "Flat 301, Krishna Towers",
			line2:   "MG Road, Bangalore 560001",
			line3:   "",
		},
	}

	splitter, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line1, line2, line3 := splitter.SplitLines(tc.address)
			if line1 != tc.line1 || line2 != tc.line2 || line3 != tc.line3 {
				t.Errorf("SplitLines(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tc.address, line1, line2, line3, tc.line1, tc.line2, tc.line3)
			}
		})
	}
}

func TestSplitEchoesOriginal(t *testing.T) {
	splitter, err := New(WithNormalizer(normalizer.NewOptimizedNormalizer()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	address := "  Plot No. 45,  Sector 12 "
	result := splitter.Split(address)
	if result.Original != address {
		t.Errorf("Original = %q, want the unmodified input %q", result.Original, address)
	}
	if result.Normalized != "Plot No. 45, Sector 12" {
		t.Errorf("Normalized = %q, want %q", result.Normalized, "Plot No. 45, Sector 12")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(WithSlackRatio(-0.5)); err == nil {
		t.Error("expected error for negative slack ratio")
	}
}
