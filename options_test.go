package typeaccessor

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultBuildOptions(t *testing.T) {
	o := defaultBuildOptions()

	if o.fetchConcurrency != 1 {
		t.Errorf("fetchConcurrency = %d; want 1", o.fetchConcurrency)
	}
	if o.metrics != nil {
		t.Error("metrics should be nil by default")
	}
	if o.logger.GetLevel() != zerolog.Disabled {
		t.Errorf("default logger level = %v; want Disabled", o.logger.GetLevel())
	}
}

func TestWithFetchConcurrency(t *testing.T) {
	o := defaultBuildOptions()

	WithFetchConcurrency(8)(&o)
	if o.fetchConcurrency != 8 {
		t.Errorf("fetchConcurrency = %d; want 8", o.fetchConcurrency)
	}

	// Non-positive values keep the previous setting.
	WithFetchConcurrency(0)(&o)
	if o.fetchConcurrency != 8 {
		t.Errorf("fetchConcurrency = %d after WithFetchConcurrency(0); want 8", o.fetchConcurrency)
	}
	WithFetchConcurrency(-3)(&o)
	if o.fetchConcurrency != 8 {
		t.Errorf("fetchConcurrency = %d after WithFetchConcurrency(-3); want 8", o.fetchConcurrency)
	}
}

func TestWithMetrics(t *testing.T) {
	o := defaultBuildOptions()
	m := NewMetrics()

	WithMetrics(m)(&o)
	if o.metrics != m {
		t.Error("WithMetrics did not attach the instance")
	}
}
