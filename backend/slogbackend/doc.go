// Package slogbackend binds delegates to the standard library's
// log/slog. The category travels as a "logger" attribute on every
// record, and level decisions stay with the configured handler.
package slogbackend
