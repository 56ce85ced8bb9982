package ninepatch

import "log/slog"

// Option configures decoding in New and FromImage.
//
// Example:
//
//	d, err := ninepatch.New(pix, stride, w, h, ninepatch.WithLogger(logger))
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// log returns the configured logger, falling back to Logger().
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithLogger routes the debug trace of a single decode to l instead of the
// package logger. A nil l keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
