package mode

import (
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// FallbackSource names the source reported when no detector answered.
const FallbackSource = "default"

// Detector is one possible source of the dark-mode preference.
type Detector interface {
	Name() string
	// Priority orders detectors; higher values are consulted first.
	Priority() int
	// Detect reports the preference and whether this detector could decide.
	Detect() (dark bool, ok bool)
}

// Preference is a resolved decision together with the detector that made it.
type Preference struct {
	Dark   bool
	Source string
}

// Chain consults detectors by descending priority and falls back to another
// Resolver when none of them can decide.
type Chain struct {
	detectors []Detector
	fallback  Resolver
	log       *logger.Logger
}

// ChainOption customizes a Chain.
type ChainOption func(*Chain)

// WithFallback replaces the Default fallback.
func WithFallback(r Resolver) ChainOption {
	return func(c *Chain) {
		if r != nil {
			c.fallback = r
		}
	}
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(log *logger.Logger) ChainOption {
	return func(c *Chain) {
		c.log = log
	}
}

// NewChain builds a Chain from detectors. Nil detectors are ignored and
// equal priorities keep their argument order.
func NewChain(detectors []Detector, opts ...ChainOption) *Chain {
	kept := make([]Detector, 0, len(detectors))
	for _, d := range detectors {
		if d != nil {
			kept = append(kept, d)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Priority() > kept[j].Priority()
	})

	c := &Chain{detectors: kept, fallback: Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the first decisive detector's answer, or the fallback.
func (c *Chain) Resolve() Preference {
	for _, d := range c.detectors {
		dark, ok := d.Detect()
		if !ok {
			c.log.WithFields(map[string]any{"detector": d.Name()}).Debug("detector undecided")
			continue
		}
		c.log.WithFields(map[string]any{"detector": d.Name(), "dark": dark}).Debug("dark mode resolved")
		return Preference{Dark: dark, Source: d.Name()}
	}

	dark := c.fallback.DarkModeEnabled()
	c.log.WithFields(map[string]any{"detector": FallbackSource, "dark": dark}).Debug("dark mode resolved")
	return Preference{Dark: dark, Source: FallbackSource}
}

// DarkModeEnabled implements Resolver.
func (c *Chain) DarkModeEnabled() bool {
	return c.Resolve().Dark
}

// Detectors returns the detectors in consultation order.
func (c *Chain) Detectors() []Detector {
	out := make([]Detector, len(c.detectors))
	copy(out, c.detectors)
	return out
}
