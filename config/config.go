package config

type number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

type (
	TCP struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// a socket. A single request must fit into it whole.
		ReadBufferSize int
	}

	Workers struct {
		// PoolSize is the number of worker goroutines serving accepted connections.
		// Zero disables the pool, so each connection gets an own goroutine instead.
		PoolSize int
		// QueueSize limits the number of accepted connections waiting for a free
		// worker. Accepting new connections blocks while the queue is full.
		QueueSize int
	}
)

// Config holds settings used across various parts of mayfly, mainly buffer sizes
// and concurrency limits.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize
// the config manually, because most likely this will result in ambiguous errors.
type Config struct {
	TCP     TCP
	Workers Workers
}

// Default returns default config. The values are initially well-balanced and fit
// most of the ordinary loads.
func Default() Config {
	return Config{
		TCP: TCP{
			ReadBufferSize: 4 * 1024, // ordinary requests fit into 4kb with a wide margin
		},
		Workers: Workers{
			PoolSize:  4,
			QueueSize: 64,
		},
	}
}

// Fill takes a config and fills it with default values everywhere where it is
// not filled. Workers.PoolSize is the only exception and stays as is, as its
// zero value carries a meaning on its own.
func Fill(original Config) (modified Config) {
	defaultConfig := Default()

	original.TCP.ReadBufferSize = customOrDefault(
		original.TCP.ReadBufferSize, defaultConfig.TCP.ReadBufferSize,
	)
	original.Workers.QueueSize = customOrDefault(
		original.Workers.QueueSize, defaultConfig.Workers.QueueSize,
	)

	return original
}

func customOrDefault[T number](custom, defaultVal T) T {
	if custom == 0 {
		return defaultVal
	}

	return custom
}
