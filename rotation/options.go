// SPDX-License-Identifier: MIT

package rotation

import "log/slog"

const panicNilLogger = "rotation: WithLogger: logger must not be nil"

// Option configures a Pipeline. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the effective pipeline configuration.
type Options struct {
	logger *slog.Logger
}

// WithLogger sets the structured logger used for stage-level debug output.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{logger: slog.New(slog.DiscardHandler)}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
