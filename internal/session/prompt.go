package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads operator answers line by line. After end of input, or once
// ctx is done, every read returns a zero value and done reports true. The
// menus treat that as "back" so the session still exits through its save
// path.
type prompter struct {
	ctx     context.Context
	w       io.Writer
	answers chan answer
	done    bool
}

type answer struct {
	text string
	err  error
}

func newPrompter(ctx context.Context, r io.Reader, w io.Writer) *prompter {
	p := &prompter{ctx: ctx, w: w, answers: make(chan answer)}
	go p.scan(bufio.NewReader(r))
	return p
}

// scan feeds lines to read. A read blocked on the terminal cannot be
// interrupted, so it runs apart from the menus and is abandoned on cancel.
func (p *prompter) scan(r *bufio.Reader) {
	for {
		s, err := r.ReadString('\n')
		select {
		case p.answers <- answer{text: s, err: err}:
		case <-p.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// interrupted reports whether ctx ended the input early.
func (p *prompter) interrupted() bool {
	return p.ctx.Err() != nil
}

// line prints label and returns the answer without its line ending.
func (p *prompter) line(label string) string {
	fmt.Fprint(p.w, label)
	return p.read()
}

// number prints label and re-prompts until the answer parses as an integer.
func (p *prompter) number(label string) int {
	fmt.Fprint(p.w, label)
	for {
		s := p.read()
		if p.done && s == "" {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n
		}
		fmt.Fprint(p.w, "Invalid input. Please enter a number: ")
	}
}

// decimal prints label and re-prompts until the answer parses as a number.
func (p *prompter) decimal(label string) float64 {
	fmt.Fprint(p.w, label)
	for {
		s := p.read()
		if p.done && s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f
		}
		fmt.Fprint(p.w, "Invalid input. Please enter a number: ")
	}
}

func (p *prompter) read() string {
	if p.done {
		return ""
	}
	if p.ctx.Err() != nil {
		p.done = true
		return ""
	}
	select {
	case <-p.ctx.Done():
		p.done = true
		return ""
	case a := <-p.answers:
		if a.err != nil {
			// A final line without a newline still counts.
			p.done = true
		}
		return strings.TrimRight(a.text, "\r\n")
	}
}
