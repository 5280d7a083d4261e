package hashtable

import "errors"

var (
	// ErrNilHasher is the panic value of NewWithHasher when the
	// supplied hasher is nil.
	ErrNilHasher = errors.New("hashtable: hasher is nil")

	// ErrBadCapacity is the panic value of WithCapacity when the
	// requested capacity is not positive.
	ErrBadCapacity = errors.New("hashtable: capacity must be positive")
)

const (
	// DefaultCapacity is the number of buckets a new table starts
	// with unless WithCapacity overrides it.
	DefaultCapacity = 16

	// loadFactorNum/loadFactorDen is the occupancy ratio that
	// triggers growth. At 3/4, a 16-bucket table grows when the
	// twelfth entry arrives.
	loadFactorNum = 3
	loadFactorDen = 4

	// growthFactor is how much the bucket array multiplies by on
	// each growth step.
	growthFactor = 2
)

// Hasher supplies the two capabilities a hash table needs from its
// keys: a hash code and an equality check. Equal keys must produce
// equal hash codes; unequal keys should spread across the uint64
// range as evenly as practical.
type Hasher[K any] interface {
	// Hash returns the hash code of k.
	Hash(k K) uint64

	// Equal reports whether a and b are the same key.
	Equal(a, b K) bool
}

// HasherFunc adapts a pair of plain functions into a Hasher.
// Both fields must be non-nil.
type HasherFunc[K any] struct {
	HashFn  func(k K) uint64
	EqualFn func(a, b K) bool
}

// Hash implements Hasher by calling HashFn.
func (f HasherFunc[K]) Hash(k K) uint64 { return f.HashFn(k) }

// Equal implements Hasher by calling EqualFn.
func (f HasherFunc[K]) Equal(a, b K) bool { return f.EqualFn(a, b) }

// Options configures a Table at construction time.
// Use DefaultOptions plus the With* helpers rather than filling the
// struct by hand.
type Options struct {
	// Capacity is the initial number of buckets. Must be positive.
	Capacity int

	// OnResize, if non-nil, is invoked after each growth step with
	// the capacities before and after.
	OnResize func(oldCap, newCap int)
}

// Option mutates Options before the table is built.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
// DefaultCapacity buckets and no hooks.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// WithCapacity sets the initial bucket count. Sizing the table for
// the expected number of entries up front avoids growth rehashes.
// Panics with ErrBadCapacity if n <= 0.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(ErrBadCapacity.Error())
	}

	return func(o *Options) { o.Capacity = n }
}

// WithOnResize registers a hook observing every growth step.
func WithOnResize(fn func(oldCap, newCap int)) Option {
	return func(o *Options) { o.OnResize = fn }
}
