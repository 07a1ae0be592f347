package hashtable

import (
	"math"

	"github.com/go-kit/log"
)

const (
	// DefaultCapacity is the slot count used when no valid capacity is given.
	DefaultCapacity = 16
	// DefaultLoadFactor is the load factor used when no valid one is given.
	DefaultLoadFactor = 0.75
)

// Config defines configurable HashTable options.
type Config struct {
	// Capacity is the requested initial slot count. It is rounded up to a
	// power of 2. Zero or negative selects DefaultCapacity.
	Capacity int
	// LoadFactor is the fraction of capacity that, once exceeded by the
	// number of keys, doubles the table. Zero, negative or NaN selects
	// DefaultLoadFactor.
	LoadFactor float64
	// Logger receives debug events for table growth.
	Logger log.Logger
}

// Option configures a HashTable at construction time.
type Option func(*Config)

// WithCapacity configures the initial slot count. Values <= 0 are
// ignored and the default is used.
func WithCapacity(capacity int) Option {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithLoadFactor configures the growth trigger. Values <= 0 are
// ignored and the default is used.
func WithLoadFactor(loadFactor float64) Option {
	return func(c *Config) {
		c.LoadFactor = loadFactor
	}
}

// WithLogger attaches a go-kit logger. Growth events are logged at debug
// level.
func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// normalize substitutes defaults for invalid settings. It never reports
// an error: bad input silently falls back.
func (c *Config) normalize() {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if !(c.LoadFactor > 0) {
		c.LoadFactor = DefaultLoadFactor
	}
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
}

// thresholdFor returns floor(capacity * loadFactor).
func thresholdFor(capacity int, loadFactor float64) int {
	t := float64(capacity) * loadFactor
	if t >= math.MaxInt {
		return math.MaxInt
	}
	return int(t)
}
