package bst

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

// Option configures a Tree at construction time.
type Option func(*options) *options

func defaultOptions() *options {
	return &options{
		logger: zerolog.Nop(),
	}
}

// WithLogger makes the tree report every insertion outcome at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) *options {
		o.logger = logger
		return o
	}
}
