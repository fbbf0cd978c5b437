package graft

import "go.uber.org/zap"

// Option configures a container created with [Empty].
type Option func(*Container)

// WithLogger attaches a logger that traces resolution at debug level. The
// logger survives merges: a merged container keeps the left operand's logger,
// or the right one's if the left has none.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		c.log = l
	}
}

var nopLogger = zap.NewNop()

func (c Container) logger() *zap.Logger {
	if c.log == nil {
		return nopLogger
	}
	return c.log
}
