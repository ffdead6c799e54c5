package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_address_splitter/internal/ports"
)

// sampleAddresses are representative inputs covering the distribution
// strategies: many segments, two segments, and delimiter-free text.
var sampleAddresses = []string{
	"123 Main Street, Apartment 4B, Springfield, IL 62701, United States",
	"Plot No. 45, Sector 12, Near City Mall, Gurgaon, Haryana 122001",
	"Flat 301, Krishna Towers, MG Road, Bangalore 560001",
	"1600 Pennsylvania Avenue Northwest, Washington DC 20500",
	"123 Short St",
	"Building A; Floor 3; Office 302; Tech Park; Whitefield; Bangalore",
}

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	splitters   []ports.LineSplitter
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterSplitter adds a line splitter to be warmed up
func (wm *Manager) RegisterSplitter(splitter ports.LineSplitter) {
	wm.splitters = append(wm.splitters, splitter)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.splitters)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpSplitters(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleAddresses[j%len(sampleAddresses)])
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpSplitters runs warmup for all registered splitters
func (wm *Manager) warmUpSplitters(ctx context.Context) {
	if len(wm.splitters) == 0 {
		return
	}

	wm.logger.Debug("Warming up splitters", "count", len(wm.splitters))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, splitter := range wm.splitters {
					_ = splitter.Split(sampleAddresses[j%len(sampleAddresses)])
				}
			}
		}()
	}

	wg.Wait()
}
