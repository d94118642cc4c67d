package rbez

import "runtime"

// Option configures [EvaluateConcurrent].
type Option func(*options)

type options struct {
	workers   int
	chunkSize int
}

const defaultChunkSize = 256

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: defaultChunkSize,
	}
}

// WithWorkers limits the number of goroutines evaluating concurrently. If n is
// 0 or negative, GOMAXPROCS is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the number of parameters evaluated by a single goroutine
// at a time. If n is 0 or negative, a default of 256 is used.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = defaultChunkSize
		}
		o.chunkSize = n
	}
}
