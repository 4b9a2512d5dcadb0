// Package zapbackend binds delegates to go.uber.org/zap.
//
// Each category becomes a named child of the configured base logger, so
// zap's own level handling, sampling and output configuration keep
// working unchanged. The category travels as the logger name.
package zapbackend
