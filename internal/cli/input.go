package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidFormat = "Warning: the value entered is not in the correct format"

// prompter reads typed answers, asking again until they parse
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// line prints the prompt and returns the next trimmed line
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) float(prompt string) (float64, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, invalidFormat)
	}
}

// positiveFloat keeps asking until the value is greater than zero
func (p *prompter) positiveFloat(prompt string) (float64, error) {
	for {
		v, err := p.float(prompt)
		if err != nil {
			return 0, err
		}
		if v > 0 {
			return v, nil
		}
		fmt.Fprintln(p.out, "Warning: the value must be greater than zero")
	}
}

// intInRange keeps asking until the value is within [lo, hi]
func (p *prompter) intInRange(prompt string, lo, hi int) (int, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(p.out, invalidFormat)
			continue
		}
		if v < lo || v > hi {
			fmt.Fprintf(p.out, "Warning: the value must be between %d and %d\n", lo, hi)
			continue
		}
		return v, nil
	}
}
