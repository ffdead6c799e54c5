package normalizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_address_splitter/internal/pool"
	"github.com/baditaflorin/go_address_splitter/internal/ports"
)

// OptimizedNormalizer implements whitespace normalization with an ASCII fast
// path and buffer pooling. It produces exactly the same output as the
// default normalizer.
type OptimizedNormalizer struct {
	// Pre-computed whitespace table for ASCII characters (0-127)
	asciiSpace [128]bool

	// Reusable buffer pool
	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(1024),
	}

	for i := 0; i < 128; i++ {
		n.asciiSpace[i] = unicode.IsSpace(rune(i))
	}

	return n
}

// Normalize collapses whitespace runs into single spaces and trims the
// edges, reusing pooled buffers to avoid per-call allocations.
func (n *OptimizedNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	// Check for ASCII-only string first (optimization)
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			asciiOnly = false
			break
		}
	}

	// Get a reusable buffer from the pool
	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0] // Reset length while keeping capacity

	// Starting in "space" state suppresses leading whitespace.
	lastWasSpace := true

	if asciiOnly {
		for i := 0; i < len(text); i++ {
			b := text[i]
			if n.asciiSpace[b] {
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			} else {
				*buffer = append(*buffer, b)
				lastWasSpace = false
			}
		}
	} else {
		for _, r := range text {
			if r < utf8.RuneSelf {
				if n.asciiSpace[r] {
					if !lastWasSpace {
						*buffer = append(*buffer, ' ')
						lastWasSpace = true
					}
				} else {
					*buffer = append(*buffer, byte(r))
					lastWasSpace = false
				}
			} else if unicode.IsSpace(r) {
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			} else {
				*buffer = utf8.AppendRune(*buffer, r)
				lastWasSpace = false
			}
		}
	}

	out := *buffer
	// Drop the single trailing space left by a whitespace-terminated input.
	if len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return string(out)
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// Type of normalizer to create
type NormalizerType int

const (
	// DefaultNormalizerType is the plain strings.Fields based normalizer
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and an ASCII fast path
	OptimizedNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
