package reconciler

import (
	"slices"
	"time"

	"github.com/agentstation/kuniv/pkg/constants"
	"github.com/agentstation/kuniv/pkg/errors"
)

// options configures a reconciler.
type options struct {
	idSeed     int
	exceptions Exceptions
	now        func() time.Time
	sources    []string
}

func defaultOptions() *options {
	return &options{
		idSeed:     constants.DefaultSyntheticIDSeed,
		exceptions: DefaultExceptions(),
		now:        time.Now,
		sources:    constants.DefaultSources(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithIDSeed sets the lowest id handed to synthesized records. The counter
// still starts above the largest directory id when that is higher.
func WithIDSeed(seed int) Option {
	return func(o *options) error {
		if seed <= 0 {
			return &errors.ValidationError{
				Field:   "id_seed",
				Value:   seed,
				Message: "must be positive",
			}
		}
		o.idSeed = seed
		return nil
	}
}

// WithExceptions replaces the exception rule table.
func WithExceptions(exceptions Exceptions) Option {
	return func(o *options) error {
		if exceptions == nil {
			return &errors.ValidationError{
				Field:   "exceptions",
				Message: "cannot be nil",
			}
		}
		o.exceptions = exceptions.Clone()
		return nil
	}
}

// WithClock sets the time source stamped into the build summary.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		o.now = now
		return nil
	}
}

// WithSources overrides the data-source labels of the build summary.
func WithSources(sources ...string) Option {
	return func(o *options) error {
		if len(sources) == 0 {
			return &errors.ValidationError{
				Field:   "sources",
				Message: "at least one label is required",
			}
		}
		o.sources = slices.Clone(sources)
		return nil
	}
}
