package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"sportsbook/internal/usecase/input"
)

var errInterrupted = errors.New("interrupted")

// Prompter answers collector questions from a line-oriented terminal. An
// interrupt or end of input while a question is open abandons the
// collection.
type Prompter struct {
	out        io.Writer
	lines      <-chan string
	interrupts <-chan os.Signal
}

// NewPrompter starts a reader goroutine on in. It lives until in reaches
// EOF, which for stdin is the life of the process.
func NewPrompter(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *Prompter {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return &Prompter{out: out, lines: lines, interrupts: interrupts}
}

func (p *Prompter) Prompt(ctx context.Context, field input.Field) (string, error) {
	p.discardInterrupts()
	fmt.Fprintf(p.out, "%s: ", field.Label)
	line, err := p.readLine(ctx)
	if errors.Is(err, errInterrupted) || errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return "", input.ErrAbandoned
	}
	return line, err
}

func (p *Prompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}

// discardInterrupts drops signals that arrived while no question was open,
// such as a Ctrl+C pressed during a gateway call.
func (p *Prompter) discardInterrupts() {
	for {
		select {
		case _, ok := <-p.interrupts:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// readLine waits for the next line. It returns errInterrupted on a signal
// and io.EOF once the input is closed.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.interrupts:
		return "", errInterrupted
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
