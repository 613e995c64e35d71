package quickinput

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true) // PromptStyle renders prompt messages. Replace with a zero style for plain text.
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))             // ErrorStyle renders validation error messages.

	// ErrorSeparator is printed on its own line after each error message.
	// Set it to the empty string to suppress the separator.
	ErrorSeparator = "---"
)

// Printer is the output sink for prompts and error messages.
// Write errors are intentionally ignored; an unwritable sink should not stall input acquisition.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
