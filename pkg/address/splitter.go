// Package address exposes the full-featured address line splitter facade:
// normalizer selection, warm-up support, and logger injection on top of the
// core splitting algorithm.
package address

import (
	"context"

	"github.com/baditaflorin/go_address_splitter/internal/adapters/logger"
	"github.com/baditaflorin/go_address_splitter/internal/adapters/normalizer"
	"github.com/baditaflorin/go_address_splitter/internal/core/domain"
	"github.com/baditaflorin/go_address_splitter/internal/core/split"
	"github.com/baditaflorin/go_address_splitter/internal/ports"
	"github.com/baditaflorin/go_address_splitter/internal/warmup"
	"github.com/baditaflorin/l"
)

// Splitter provides methods to split an address into three balanced lines.
type Splitter struct {
	splitter   ports.LineSplitter
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// SplitterOption defines a functional option for configuring Splitter.
type SplitterOption func(*splitterConfig)

type splitterConfig struct {
	SlackRatio   float64
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithSlackRatio sets a custom rebalancing slack ratio.
func WithSlackRatio(ratio float64) SplitterOption {
	return func(cfg *splitterConfig) {
		cfg.SlackRatio = ratio
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) SplitterOption {
	return func(cfg *splitterConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(normalizer ports.Normalizer) SplitterOption {
	return func(cfg *splitterConfig) {
		cfg.Normalizer = normalizer
	}
}

// WithOptimizedNormalizer sets the pooled ASCII fast-path normalizer.
func WithOptimizedNormalizer() SplitterOption {
	return func(cfg *splitterConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) SplitterOption {
	return func(cfg *splitterConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) SplitterOption {
	return func(cfg *splitterConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Splitter instance.
func New(opts ...SplitterOption) (*Splitter, error) {
	defaultConfig := split.DefaultConfig()

	config := &splitterConfig{
		SlackRatio:   defaultConfig.SlackRatio,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up normalizer if not provided
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	// Create core splitter
	coreConfig := split.Config{
		SlackRatio: config.SlackRatio,
	}
	coreSplitter, err := split.NewSplitter(coreConfig, config.Logger, config.Normalizer)
	if err != nil {
		return nil, err
	}

	s := &Splitter{
		splitter:   coreSplitter,
		logger:     config.Logger,
		normalizer: config.Normalizer,
		warmed:     false,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Split distributes the given address across three lines.
func (s *Splitter) Split(address string) domain.Result {
	return s.splitter.Split(address)
}

// WarmUp performs system warm-up to optimize performance.
func (s *Splitter) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterSplitter(s.splitter)
	warmupMgr.RegisterNormalizer(s.normalizer)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}
