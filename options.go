package cncsupervisor

import "context"

// Option configures a Supervisor at construction time, following the same
// closure-over-a-mutable-config shape eventloop's LoopOption/loopOptionImpl
// use, applied here to Config plus the handful of non-Config knobs (logger,
// clock, context, rate limiter) that aren't part of the firmware-style
// settings surface.
type Option interface {
	apply(*buildOptions)
}

type optionImpl struct {
	applyFunc func(*buildOptions)
}

func (o *optionImpl) apply(b *buildOptions) {
	o.applyFunc(b)
}

type buildOptions struct {
	cfg     Config
	logger  Logger
	clock   Clock
	ctx     context.Context
	limiter *EventLimiter
}

// WithParking enables door-parking, replacing the whole Config with cfg
// (ParkingEnabled forced true); fields left unset in cfg are zero, not the
// defaults. Leaving it unset keeps parking disabled, matching a firmware
// build with PARKING_ENABLE undefined.
func WithParking(cfg Config) Option {
	return &optionImpl{func(b *buildOptions) {
		cfg.ParkingEnabled = true
		b.cfg = cfg
	}}
}

// WithoutParking explicitly disables parking, keeping any other Config
// fields already set by an earlier option.
func WithoutParking() Option {
	return &optionImpl{func(b *buildOptions) {
		b.cfg.ParkingEnabled = false
	}}
}

// WithConfig replaces the whole Config wholesale; later WithParking /
// WithoutParking calls still win if applied afterward.
func WithConfig(cfg Config) Option {
	return &optionImpl{func(b *buildOptions) {
		b.cfg = cfg
	}}
}

// WithLogger installs a structured logger. Omitting it leaves logging as a
// no-op, mirroring eventloop's SetStructuredLogger default.
func WithLogger(l Logger) Option {
	return &optionImpl{func(b *buildOptions) {
		if l != nil {
			b.logger = l
		}
	}}
}

// WithEventLimiter installs a log rate limiter keyed by log message, which
// throttles e.g. a flapping door's repeated preempt lines. Omitting it
// leaves logging unthrottled.
func WithEventLimiter(l *EventLimiter) Option {
	return &optionImpl{func(b *buildOptions) {
		b.limiter = l
	}}
}

// WithClock overrides the Clock used by the suspension-aware delay
// primitive; tests use this to make multi-second restore delays instant.
func WithClock(c Clock) Option {
	return &optionImpl{func(b *buildOptions) {
		if c != nil {
			b.clock = c
		}
	}}
}

// WithContext sets the context consulted by the spindle-synchronized entry
// wait, so it can be cancelled instead of spinning forever if the
// spindle's encoder never reports the expected index pulses.
func WithContext(ctx context.Context) Option {
	return &optionImpl{func(b *buildOptions) {
		if ctx != nil {
			b.ctx = ctx
		}
	}}
}

func resolveOptions(opts []Option) *buildOptions {
	b := &buildOptions{
		cfg:    defaultConfig(),
		logger: NewNoopLogger(),
		clock:  realClock{},
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(b)
	}
	return b
}
