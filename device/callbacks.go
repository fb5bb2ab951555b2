package device

// StateCallback is invoked after a command mutates the controller state.
// The rendering loop hangs off this seam: it reads the new state and
// redraws. Implementations should return quickly; the callback runs on the
// command-processing path.
type StateCallback func(State)

// Logger is an optional logging interface that can be provided to the
// controller and session. This allows integration with any logging
// framework.
//
// Example with zap:
//
//	sugar := zapLogger.Sugar()
//	type zapAdapter struct{ *zap.SugaredLogger }
//	func (z zapAdapter) Debug(msg string, kv ...interface{}) { z.Debugw(msg, kv...) }
//	func (z zapAdapter) Info(msg string, kv ...interface{})  { z.Infow(msg, kv...) }
//	func (z zapAdapter) Error(msg string, kv ...interface{}) { z.Errorw(msg, kv...) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
