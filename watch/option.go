package watch

// Options contains configuration options for watch operations.
type Options struct {
	// Prefix makes the watcher match every key starting with the watched key.
	Prefix bool
	// BufferSize is the capacity of the event channel. Events are dropped
	// while the channel is full.
	BufferSize int
}

// DefaultBufferSize is the event channel capacity used when none is given.
const DefaultBufferSize = 100

// Option is a function that configures watch operation options.
type Option func(*Options)

// WithPrefix makes the watcher match every key under the watched key,
// even if it does not end with "/".
func WithPrefix() Option {
	return func(opts *Options) {
		opts.Prefix = true
	}
}

// WithBufferSize sets the capacity of the event channel.
func WithBufferSize(size int) Option {
	return func(opts *Options) {
		opts.BufferSize = size
	}
}

// Apply builds Options from the given option functions.
func Apply(opts ...Option) Options {
	out := Options{Prefix: false, BufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&out)
	}

	if out.BufferSize <= 0 {
		out.BufferSize = DefaultBufferSize
	}

	return out
}
