// Package logrusbackend binds delegates to github.com/sirupsen/logrus.
// The category travels as a "category" field on every entry.
package logrusbackend
