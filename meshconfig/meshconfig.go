// Package meshconfig holds the tunable parameters that drive the
// triangulation kernel: quality threshold, insertion limits, the
// bounding-cover margin, and the periodic smoothing/logging cadence.
package meshconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Options configures a Triangulator run. Zero-value Options is not
// usable directly; build one with Default() and apply Option functions,
// or load one from YAML with Load.
type Options struct {
	// QualityThreshold is β, the circumradius/feature-size ratio above
	// which a triangle is still considered ACTIVE during Frontal.
	QualityThreshold float64 `yaml:"quality_threshold"`

	// CoverMargin inflates the PSLG's bounding box by this fraction when
	// constructing the initial covering super-triangle pair.
	CoverMargin float64 `yaml:"cover_margin"`

	// MaxInsertions bounds the number of points Frontal may add before
	// it gives up and reports ConvergenceFailure rather than looping
	// forever on a feature size that can't be satisfied.
	MaxInsertions int `yaml:"max_insertions"`

	// SnapFraction is the fraction of the local feature size within
	// which Frontal reuses an existing nearby point instead of
	// inserting a new one.
	SnapFraction float64 `yaml:"snap_fraction"`

	// SmoothEvery runs one Laplacian smoothing pass after this many
	// Frontal insertions. Zero disables smoothing.
	SmoothEvery int `yaml:"smooth_every"`

	// PrintLevel and PrintIter control progress logging verbosity and
	// cadence (every PrintIter insertions), consumed by package mlog.
	PrintLevel int `yaml:"print_level"`
	PrintIter  int `yaml:"print_iter"`

	// RandomSeed is a seed for randomized tie-breaking. The kernel
	// performs none, so it does not read this value.
	RandomSeed int64 `yaml:"random_seed"`
}

// Default returns the kernel's baseline configuration.
func Default() Options {
	return Options{
		QualityThreshold: 1.0,
		CoverMargin:      0.1,
		MaxInsertions:    200000,
		SnapFraction:     0.5,
		SmoothEvery:      25,
		PrintLevel:       1,
		PrintIter:        500,
		RandomSeed:       1,
	}
}

// Option mutates an Options value under construction.
type Option func(*Options)

// New builds Options starting from Default and applying opts in order.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithQualityThreshold sets β.
func WithQualityThreshold(beta float64) Option {
	return func(o *Options) { o.QualityThreshold = beta }
}

// WithCoverMargin sets the bounding-cover inflation fraction.
func WithCoverMargin(margin float64) Option {
	return func(o *Options) { o.CoverMargin = margin }
}

// WithMaxInsertions bounds Frontal's point budget.
func WithMaxInsertions(n int) Option {
	return func(o *Options) { o.MaxInsertions = n }
}

// WithSnapFraction sets the point-reuse snap radius, as a fraction of
// local feature size.
func WithSnapFraction(frac float64) Option {
	return func(o *Options) { o.SnapFraction = frac }
}

// WithSmoothEvery sets the Laplacian smoothing cadence.
func WithSmoothEvery(n int) Option {
	return func(o *Options) { o.SmoothEvery = n }
}

// WithPrintLevel sets progress logging verbosity.
func WithPrintLevel(level int) Option {
	return func(o *Options) { o.PrintLevel = level }
}

// WithPrintIter sets the progress logging cadence, in insertions.
func WithPrintIter(n int) Option {
	return func(o *Options) { o.PrintIter = n }
}

// WithRandomSeed sets the kernel's tie-breaking seed.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// Load reads Options from a YAML file, starting from Default for any
// field the file omits.
func Load(path string) (Options, error) {
	o := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("meshconfig: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("meshconfig: parse %s: %w", path, err)
	}
	return o, nil
}
