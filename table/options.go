package table

import "openhash/constants"

// config collects construction-time settings.
type config struct {
	capacity int
	trace    bool
}

// Option configures a Table at construction.
type Option func(*config)

// WithCapacity sets the initial slot count. Values below 1 fall back to
// constants.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithGrowthTrace logs every slot array reallocation under the GROW prefix.
func WithGrowthTrace() Option {
	return func(c *config) {
		c.trace = true
	}
}

func buildConfig(opts []Option) config {
	c := config{capacity: constants.DefaultCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity < 1 {
		c.capacity = constants.DefaultCapacity
	}
	return c
}
