package buffer

import "strings"

// LineBuffer accumulates output lines for the line-oriented passes.
type LineBuffer struct {
	lines []string
	size  int
}

// New creates a new LineBuffer.
func New() *LineBuffer {
	return &LineBuffer{
		lines: make([]string, 0),
	}
}

// WriteLine appends one line.
func (lb *LineBuffer) WriteLine(line string) {
	lb.lines = append(lb.lines, line)
	lb.size += len(line)
}

// Len returns the number of buffered lines.
func (lb *LineBuffer) Len() int {
	return len(lb.lines)
}

// PopLast removes and returns the last written line.
func (lb *LineBuffer) PopLast() string {
	if len(lb.lines) == 0 {
		return ""
	}
	last := lb.lines[len(lb.lines)-1]
	lb.lines = lb.lines[:len(lb.lines)-1]
	lb.size -= len(last)
	return last
}

// Join returns the buffered lines joined with sep.
func (lb *LineBuffer) Join(sep string) string {
	if len(lb.lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(lb.size + len(sep)*(len(lb.lines)-1))
	for i, line := range lb.lines {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(line)
	}
	return b.String()
}

// String returns the buffered lines joined with newlines.
func (lb *LineBuffer) String() string {
	return lb.Join("\n")
}

// Reset clears the buffer.
func (lb *LineBuffer) Reset() {
	lb.lines = lb.lines[:0]
	lb.size = 0
}
