package quickinput

import (
	"errors"
	"os"

	"golang.org/x/term"
)

var (
	// ErrNoRule indicates that [Acquire] was given a [Rule] with no parse function.
	ErrNoRule = errors.New("rule has no parse function")

	// Default is the session used by the package-level read functions.
	// It reads from STDIN and prints to STDERR.
	Default = NewSession(NewScanReader(os.Stdin), NewPrinter())
)

// Option customizes a single acquisition.
type Option func(*settings)

type settings struct {
	prompt    string
	hasPrompt bool
	errMsg    string
	hasErrMsg bool
}

// Prompt sets a message shown once, before the first read.
// It is printed without a trailing newline so input happens on the same line.
func Prompt(msg string) Option {
	return func(s *settings) {
		s.prompt = msg
		s.hasPrompt = true
	}
}

// ErrorMessage sets the message shown verbatim after each failed attempt, replacing the rule's default.
// An empty string is a valid message, not a request for the default.
func ErrorMessage(msg string) Option {
	return func(s *settings) {
		s.errMsg = msg
		s.hasErrMsg = true
	}
}

// Session binds a [LineReader] to a [Printer].
// A Session is not safe for concurrent use; it expects a single interactive caller at a time.
type Session struct {
	reader  LineReader
	printer *Printer
}

func NewSession(reader LineReader, printer *Printer) *Session {
	return &Session{reader: reader, printer: printer}
}

// Printer returns the session's output sink, mostly so callers can [Printer.Redirect] it.
func (s *Session) Printer() *Printer {
	return s.printer
}

// Interactive reports whether the session's [LineReader] is backed by a terminal.
func (s *Session) Interactive() bool {
	scan, ok := s.reader.(*ScanReader)
	if !ok {
		return false
	}
	file, ok := scan.source.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Acquire runs the validated input loop: read a line, apply the rule, and on failure
// print the effective error message and read again. It returns the first value the
// rule accepts. The loop has no iteration limit; it ends only on success or when the
// reader fails, in which case the reader's error is returned as-is.
func Acquire[T any](s *Session, rule Rule[T], opts ...Option) (T, error) {
	var zero T
	if rule.Parse == nil {
		return zero, ErrNoRule
	}
	var set settings
	for _, opt := range opts {
		opt(&set)
	}
	if set.hasPrompt && len(set.prompt) > 0 {
		s.printer.Print(PromptStyle.Render(set.prompt))
	}
	for {
		raw, err := s.reader.ReadLine()
		if err != nil {
			return zero, err
		}
		val, parseErr := rule.Parse(raw)
		if parseErr == nil {
			return val, nil
		}
		s.showError(set, rule.DefaultError)
	}
}

func (s *Session) showError(set settings, defaultMsg string) {
	msg := defaultMsg
	if set.hasErrMsg {
		msg = set.errMsg
	}
	s.printer.Println(ErrorStyle.Render(msg))
	if len(ErrorSeparator) > 0 {
		s.printer.Println(ErrorSeparator)
	}
}
