// addresssplitter.go
// Package addresssplitter reformats one free-form address string into exactly
// three display lines of roughly balanced length. All original content and
// word boundaries are preserved: whitespace runs collapse to single spaces,
// comma/semicolon-delimited segments are distributed across the lines, and
// overlong lines shed whole trailing words onto the next line. Splitting is a
// total operation; every input, including the empty string, yields a valid
// three-line result.
//
// This package uses the functional options pattern to allow configuration of
// parameters like the rebalancing slack ratio, the normalizer, and logging.
package addresssplitter

import (
	"github.com/baditaflorin/go_address_splitter/internal/adapters/logger"
	"github.com/baditaflorin/go_address_splitter/internal/adapters/normalizer"
	"github.com/baditaflorin/go_address_splitter/internal/core/domain"
	"github.com/baditaflorin/go_address_splitter/internal/core/split"
	"github.com/baditaflorin/go_address_splitter/internal/ports"
	"github.com/baditaflorin/l"
)

// Result holds the outcome of an address split computation.
type Result = domain.Result

// DefaultSlackRatio is the default tolerance before word-level rebalancing.
const DefaultSlackRatio = split.DefaultSlackRatio

// Config holds configuration options for the address splitter.
type Config struct {
	// SlackRatio is the fraction of the per-line target a line may exceed
	// before trailing words move to the next line.
	SlackRatio float64
	// Logger for tracing computation steps.
	Logger l.Logger
	// Normalizer used for whitespace normalization.
	Normalizer ports.Normalizer
}

// Option defines a functional option for configuring the splitter.
type Option func(*Config)

// WithSlackRatio sets a custom rebalancing slack ratio.
func WithSlackRatio(ratio float64) Option {
	return func(cfg *Config) {
		cfg.SlackRatio = ratio
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *Config) {
		cfg.Normalizer = n
	}
}

// AddressSplitter splits address strings into three balanced lines using
// configurable parameters.
type AddressSplitter struct {
	splitter *split.Splitter
}

// New creates a new AddressSplitter with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*AddressSplitter, error) {
	cfg := Config{
		SlackRatio: DefaultSlackRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var portLogger ports.Logger
	var err error
	if cfg.Logger != nil {
		portLogger = logger.FromExisting(cfg.Logger)
	} else {
		portLogger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	splitter, err := split.NewSplitter(
		split.Config{SlackRatio: cfg.SlackRatio},
		portLogger,
		cfg.Normalizer,
	)
	if err != nil {
		return nil, err
	}

	return &AddressSplitter{splitter: splitter}, nil
}

// Split distributes the given address across three lines. It never fails;
// empty and whitespace-only inputs yield three empty lines.
func (a *AddressSplitter) Split(address string) Result {
	return a.splitter.Split(address)
}

// SplitLines is a convenience wrapper returning just the three lines.
func (a *AddressSplitter) SplitLines(address string) (string, string, string) {
	result := a.splitter.Split(address)
	return result.Line1, result.Line2, result.Line3
}
