// Package menu runs numbered, line-based console menus
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports numeric input that could not be parsed.
// It ends the menu run.
type ParseError struct {
	Input string
	Kind  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Prompter writes a prompt and reads one line of input per call
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter reads lines from in and writes prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Line prints prompt and returns the next line without its terminator.
// It returns io.EOF once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Float reads a line and parses it as a decimal number
func (p *Prompter) Float(prompt string) (float64, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, &ParseError{Input: line, Kind: "number", Err: err}
	}
	return value, nil
}

// Int reads a line and parses it as a whole number that fits in 32 bits
func (p *Prompter) Int(prompt string) (int, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, &ParseError{Input: line, Kind: "integer", Err: err}
	}
	return int(value), nil
}
