// Package zerologbackend binds delegates to github.com/rs/zerolog. The
// category travels as a "category" field on every event.
package zerologbackend
