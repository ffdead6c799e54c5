package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_address_splitter/internal/ports"
)

// DefaultNormalizer implements the default whitespace normalization strategy.
// Unlike a matching-oriented normalizer it preserves case and punctuation:
// address content must survive verbatim, only whitespace runs collapse.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize collapses consecutive whitespace into single spaces and trims
// leading and trailing whitespace.
func (n *DefaultNormalizer) Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
