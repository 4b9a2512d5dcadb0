// Package memorybackend records log statements in memory for inspection
// in tests. Handles share their factory's enabled flags, so toggling a
// level is observed immediately by every handle already handed out.
package memorybackend
