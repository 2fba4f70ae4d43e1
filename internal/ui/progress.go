package ui

import (
	"fmt"
	"io"
)

// Progress reports step completion for a fixed number of sequential tasks.
type Progress struct {
	out       io.Writer
	total     int
	completed int
}

// NewProgress creates a progress reporter for total tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints the running count.
func (p *Progress) Done(label string) {
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.completed, p.total, label)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
