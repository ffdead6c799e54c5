package normalizer

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Whitespace only",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "Already normalized",
			input:    "123 Main Street, Apartment 4B",
			expected: "123 Main Street, Apartment 4B",
		},
		{
			name:     "Collapses runs and trims",
			input:    "  123   Main\tStreet,\n\nApartment  4B  ",
			expected: "123 Main Street, Apartment 4B",
		},
		{
			name:     "Preserves case and punctuation",
			input:    "Plot No. 45; Sector 12",
			expected: "Plot No. 45; Sector 12",
		},
		{
			name:     "Unicode content",
			input:    "  Ülица  Пушкина, дом 7 ",
			expected: "Ülица Пушкина, дом 7",
		},
	}

	def := NewDefaultNormalizer()
	opt := NewOptimizedNormalizer()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := def.Normalize(tc.input); got != tc.expected {
				t.Errorf("default: Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if got := opt.Normalize(tc.input); got != tc.expected {
				t.Errorf("optimized: Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFactory(t *testing.T) {
	factory := NewNormalizerFactory()

	if _, ok := factory.CreateNormalizer(DefaultNormalizerType).(*DefaultNormalizer); !ok {
		t.Error("expected a DefaultNormalizer")
	}
	if _, ok := factory.CreateNormalizer(OptimizedNormalizerType).(*OptimizedNormalizer); !ok {
		t.Error("expected an OptimizedNormalizer")
	}
}
