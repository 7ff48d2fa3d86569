package calcscript

import "log/slog"

type config struct {
	handler  slog.Handler
	maxSteps uint64
}

// Option configures a script run.
type Option func(*config)

// WithLogHandler sets the handler for log output of the run and its
// evaluator. Without it, nothing is logged.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) { c.handler = handler }
}

// WithMaxSteps aborts scripts that execute more than n Starlark steps.
func WithMaxSteps(n uint64) Option {
	return func(c *config) { c.maxSteps = n }
}

func newConfig(opts []Option) *config {
	c := &config{handler: slog.DiscardHandler}
	for _, opt := range opts {
		opt(c)
	}
	if c.handler == nil {
		c.handler = slog.DiscardHandler
	}
	return c
}
