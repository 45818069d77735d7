package repl

import (
	"bufio"
	"io"
)

// LineReader supplies one line of input per call and returns io.EOF when
// input is exhausted.
type LineReader interface {
	Readline() (string, error)
}

// Prompter is implemented by readers that display their own prompt, such as
// a terminal line editor.
type Prompter interface {
	SetPrompt(prompt string)
}

type scanReader struct {
	scanner *bufio.Scanner
}

// NewLineReader creates a LineReader over r for non-interactive input.
func NewLineReader(r io.Reader) LineReader {
	return &scanReader{scanner: bufio.NewScanner(r)}
}

func (s *scanReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
