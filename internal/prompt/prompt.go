// Package prompt asks the interactive questions of a scoring run.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Prompter writes questions to out and reads one answer per line from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// line prints question and returns the next trimmed answer.
func (p *Prompter) line(question string) (string, error) {
	fmt.Fprint(p.out, question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", fmt.Errorf("no answer to %q: %w", strings.TrimSpace(question), io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Confirm asks a yes/no question. Only "yes", in any letter case, is true.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.line(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}

// Float asks for a finite number, repeating the question until one is given.
func (p *Prompter) Float(question string) (float64, error) {
	for {
		answer, err := p.line(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		fmt.Fprintf(p.out, "%q is not a number, try again.\n", answer)
	}
}

// NonNegativeInt asks for a whole number >= 0, repeating the question until
// one is given.
func (p *Prompter) NonNegativeInt(question string) (int, error) {
	for {
		answer, err := p.line(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintf(p.out, "%q is not a whole number of 0 or more, try again.\n", answer)
	}
}
