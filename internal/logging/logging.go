// Package logging defines the injectable logger interface the parser
// façade uses for its debug trail (spec.md section 7 / SPEC_FULL.md
// section 7): statement dispatch and injected errors, nothing else. The
// default is a no-op so the library has no logging side effects unless a
// caller opts in, matching the pack's convention of routing everything
// through a single sugared logger rather than the standard library's log
// package.
package logging

// Logger is a minimal structured-logging surface, shaped after
// zap.SugaredLogger's *w methods so a *zap.Logger can back it directly via
// NewZap without any adaptation layer.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// Noop discards every call. It is the façade's default logger.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Debugw(string, ...any) {}
func (noopLogger) Infow(string, ...any)  {}
func (noopLogger) Errorw(string, ...any) {}
