package viewmodels

import (
	"context"

	"go.uber.org/zap"
)

// Dispatcher runs fn on the goroutine that owns UI state. The default
// runs fn immediately on the task's goroutine.
type Dispatcher func(fn func())

func inlineDispatcher(fn func()) {
	fn()
}

type options struct {
	ctx      context.Context
	dispatch Dispatcher
	logger   *zap.Logger
}

type Option func(*options)

// WithContext sets the parent context of every task the view model starts.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func WithDispatcher(dispatch Dispatcher) Option {
	return func(o *options) {
		o.dispatch = dispatch
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		ctx:      context.Background(),
		dispatch: inlineDispatcher,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.dispatch == nil {
		o.dispatch = inlineDispatcher
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
