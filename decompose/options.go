// SPDX-License-Identifier: MIT

package decompose

import (
	"log/slog"
	"runtime"
)

const (
	panicWorkersInvalid = "decompose: WithWorkers: n must be >= 1"
	panicNilLogger      = "decompose: WithLogger: logger must not be nil"
)

// Option configures Compute.
type Option func(*Options)

// Options holds the effective Compute configuration.
type Options struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds the number of days decomposed concurrently.
// The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger for per-day debug output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
