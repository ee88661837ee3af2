package crypto

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Tracer observes the round network. Round is called after each of the 8
// rounds with that round's subkeys and the resulting subblocks; Output is
// called once with the final subblocks.
//
// A cipher with a tracer decrypts blocks one at a time so that calls for
// different blocks never interleave.
type Tracer interface {
	Round(round int, keys []uint16, x [4]uint16)
	Output(x [4]uint16)
}

// WriterTracer writes a plain-text dump of every round to an io.Writer.
type WriterTracer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewWriterTracer returns a tracer writing to w. Call Flush when done.
func NewWriterTracer(w io.Writer) *WriterTracer {
	return &WriterTracer{w: bufio.NewWriter(w)}
}

func (t *WriterTracer) Round(round int, keys []uint16, x [4]uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	fmt.Fprintf(t.w, "round %d keys: %s\n", round+1, strings.Join(parts, ", "))
	fmt.Fprintf(t.w, "%d, %d, %d, %d\n\n", x[0], x[1], x[2], x[3])
}

func (t *WriterTracer) Output(x [4]uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "output: %d, %d, %d, %d\n\n", x[0], x[1], x[2], x[3])
}

// Flush writes any buffered output.
func (t *WriterTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}
