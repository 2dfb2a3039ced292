package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks one question at a time and blocks until a line is typed.
type Prompter struct {
	in      io.Reader
	scanner *bufio.Scanner
	out     io.Writer
	closed  bool
}

// NewPrompter reads answers from in and writes prompts and output to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, scanner: bufio.NewScanner(in), out: out}
}

// Ask prints the prompt and returns the next line without its line ending.
// It returns io.EOF once the input is exhausted or closed.
func (p *Prompter) Ask(prompt string) (string, error) {
	if p.closed {
		return "", io.EOF
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(p.scanner.Text(), "\r"), nil
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Close releases the input when it can be closed. Further Ask calls return io.EOF.
func (p *Prompter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
