package quickinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ErrInputExhausted indicates that the input stream ended before a valid value was read.
	// Any error returned from a read function will match this with [errors.Is].
	ErrInputExhausted = errors.New("input exhausted")
)

// LineReader supplies one line of raw text per call.
// When no more input is available it must return an error wrapping [ErrInputExhausted].
type LineReader interface {
	ReadLine() (string, error)
}

// PasswordReader may be implemented by a [LineReader] that can read a line without echoing it.
// [ScanReader] implements this when its source is a terminal.
type PasswordReader interface {
	ReadPassword() (string, error)
}

// ScanReader is the standard [LineReader] over an [io.Reader], splitting on lines.
// Trailing carriage returns are stripped, so CRLF input behaves the same as LF input.
type ScanReader struct {
	source  io.Reader
	scanner *bufio.Scanner
}

// NewScanReader creates a [ScanReader] that reads lines from source.
func NewScanReader(source io.Reader) *ScanReader {
	return &ScanReader{source: source, scanner: bufio.NewScanner(source)}
}

func (r *ScanReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputExhausted, err)
	}
	return "", ErrInputExhausted
}

// ReadPassword reads a line without echoing it when the source is a terminal.
// Other sources fall back to a plain line read, which keeps piped input and tests working.
func (r *ScanReader) ReadPassword() (string, error) {
	file, ok := r.source.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return r.ReadLine()
	}
	line, err := term.ReadPassword(int(file.Fd()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputExhausted, err)
	}
	return string(line), nil
}

// Interactive reports whether the [Default] session is reading from a terminal.
// Host programs can use this to skip prompting entirely in scripted environments.
func Interactive() bool {
	return Default.Interactive()
}
