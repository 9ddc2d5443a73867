// Package pagerank: configuration surface and sentinel errors.
//
// This file declares the Default* constants, Options, functional Options
// and the error values surfaced by NewEngine and Run.

package pagerank

import "errors"

const (
	// DefaultAlpha is the conventional damping factor: the probability mass
	// that follows outgoing links rather than teleporting uniformly.
	DefaultAlpha = 0.85

	// DefaultThreshold is the default cap on the squared Euclidean distance
	// between successive rank vectors at which iteration stops.
	DefaultThreshold = 1e-6
)

// Sentinel errors for engine construction and execution.
var (
	// ErrBadAlpha indicates a damping factor outside [0, 1].
	ErrBadAlpha = errors.New("pagerank: alpha must lie in [0, 1]")

	// ErrBadThreshold indicates a convergence threshold that is not strictly positive.
	ErrBadThreshold = errors.New("pagerank: threshold must be positive")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("pagerank: graph is nil")
)

// Options configures an Engine.
//
// Alpha     – damping factor in [0, 1]; validated by NewEngine.
// Threshold – convergence threshold, > 0; compared against the squared
// Euclidean distance between successive full rank vectors.
type Options struct {
	Alpha     float64
	Threshold float64
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithAlpha sets the damping factor. Values outside [0, 1] are rejected by
// NewEngine with ErrBadAlpha.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithThreshold sets the convergence threshold. Non-positive values are
// rejected by NewEngine with ErrBadThreshold.
func WithThreshold(threshold float64) Option {
	return func(o *Options) { o.Threshold = threshold }
}

// DefaultOptions returns Options carrying the package defaults. Use it as
// the starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Alpha:     DefaultAlpha,
		Threshold: DefaultThreshold,
	}
}
