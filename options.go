package typeaccessor

import (
	"github.com/rs/zerolog"
)

// Option configures ambient behavior of a Builder: logging, metrics, and
// fetch parallelism. Domain inputs (modules, source, decoder, recursion)
// are supplied through the Builder's chained methods.
type Option func(*buildOptions)

// buildOptions holds the ambient configuration applied at NewBuilder time.
type buildOptions struct {
	logger           zerolog.Logger
	metrics          *Metrics
	fetchConcurrency int
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		logger:           zerolog.Nop(),
		fetchConcurrency: 1,
	}
}

// WithLogger attaches a logger. The library is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// WithMetrics attaches a Metrics instance to record build activity.
// The same instance may be shared across builds.
func WithMetrics(m *Metrics) Option {
	return func(o *buildOptions) {
		o.metrics = m
	}
}

// WithFetchConcurrency allows up to n module fetches in flight at once
// while draining the retrieval frontier. The default of 1 fetches serially;
// either way the fetch sequence and resulting index are deterministic.
func WithFetchConcurrency(n int) Option {
	return func(o *buildOptions) {
		if n > 0 {
			o.fetchConcurrency = n
		}
	}
}
