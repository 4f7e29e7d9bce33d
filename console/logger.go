package console

// Logger is the minimal logging surface the console needs. It matches the
// file logger in internal/log so embedding applications can pass that in
// directly; the default is a no-op so the library never forces a log file on
// its host.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
