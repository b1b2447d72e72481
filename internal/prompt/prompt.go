// Package prompt reads line-based answers from the console.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInputClosed is returned when the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter writes prompts and reads one line per answer.
// Lines have no length limit.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Prompter {
	return &Prompter{
		r:   bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Line prints prompt (if non-empty) on its own line and returns the next input line.
// The line terminator ("\n" or "\r\n") is stripped; other whitespace is kept.
// If ctx is done once the read returns, ctx.Err() is returned instead of the line.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}

	line, err := p.r.ReadString('\n')
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A final line without a terminator still counts.
		if line == "" {
			return "", ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Int prompts until the answer parses as an integer.
// After each malformed answer retry is printed and the prompt is shown again.
// Only stream faults and cancellation are returned as errors.
func (p *Prompter) Int(ctx context.Context, prompt, retry string) (int, error) {
	for {
		line, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := ParseInt(line)
		if err == nil {
			return n, nil
		}

		p.log.Debug().Int("length", len(line)).Msg("not a number, asking again")
		fmt.Fprintln(p.out, retry)
	}
}

// ParseInt parses a trimmed decimal integer.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return n, nil
}
