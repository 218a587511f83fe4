package logging

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZap wraps l as a Logger. A nil l is rejected by construction — callers
// that want no logging use Noop instead of passing nil.
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Debugw(msg string, keysAndValues ...any) { z.s.Debugw(msg, keysAndValues...) }
func (z *zapLogger) Infow(msg string, keysAndValues ...any)  { z.s.Infow(msg, keysAndValues...) }
func (z *zapLogger) Errorw(msg string, keysAndValues ...any) { z.s.Errorw(msg, keysAndValues...) }
