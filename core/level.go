package core

// Level represents the severity of a log statement. The delegate
// capability set spans exactly two levels; the wrapped backends map them
// onto their own wider ladders.
type Level int8

const (
	// DebugLevel for detailed diagnostic messages
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}
