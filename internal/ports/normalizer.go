package ports

// Normalizer defines the interface for address text normalization.
type Normalizer interface {
	Normalize(text string) string
}
