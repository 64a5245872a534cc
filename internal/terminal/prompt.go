// Package terminal adapts the wizard state machines to a line-based
// terminal: yes/no prompts, screen navigation and plain-text rendering.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompt asks yes/no questions on a terminal.
type Prompt struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewPrompt reads answers from in and writes questions to out.
// With assumeYes every question is answered yes without reading.
func NewPrompt(in io.Reader, out io.Writer, assumeYes bool) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Confirm prints "title: message [y/N] " and reports whether the answer is
// y or yes. Anything else, EOF and a cancelled ctx answer no.
func (p *Prompt) Confirm(ctx context.Context, title, message string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.assumeYes {
		return true
	}
	if ctx.Err() != nil {
		return false
	}
	fmt.Fprintf(p.out, "%s: %s [y/N] ", title, message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
