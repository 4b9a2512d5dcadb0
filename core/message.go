package core

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
)

// placeholder is the token Render substitutes arguments into.
const placeholder = "{}"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Render substitutes each "{}" token in msg with the next argument,
// stringified as by fmt's %v verb. Tokens and arguments pair positionally:
// surplus tokens stay literal, surplus arguments are ignored. Backends
// gate Render behind their enabled-checks, so arguments are never
// stringified for a message that will not be emitted.
func Render(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	i := strings.Index(msg, placeholder)
	if i < 0 {
		return msg
	}

	buf := getBuffer()
	defer putBuffer(buf)

	rest := msg
	for _, arg := range args {
		if i < 0 {
			break
		}
		buf.WriteString(rest[:i])
		fmt.Fprintf(buf, "%v", arg)
		rest = rest[i+len(placeholder):]
		i = strings.Index(rest, placeholder)
	}
	buf.WriteString(rest)
	return buf.String()
}
