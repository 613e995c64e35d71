/*
Package quickinput removes the retry boilerplate from reading typed values interactively.
Each function prompts, reads a line, and keeps asking until the user provides something that parses as the requested type.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output (prompts and error messages) goes to STDERR by default. This is supported with a configurable [Printer].
  - The prompt is shown once, before the first read. Retries only show the error message, so the user isn't spammed with the full prompt on every typo.
  - An absent error message means "use the per-type default". An empty error message is not absent, and is shown as-is.
  - Validation never escapes to the caller; the only error a read function returns wraps [ErrInputExhausted], which means the input stream ended before a valid value arrived.

# Usage

The package-level functions read from STDIN using the [Default] session:

	age, err := quickinput.Int(quickinput.Prompt("Age: "))
	if err != nil {
		// input stream ended
	}

	ok, err := quickinput.Bool(
		quickinput.Prompt("Continue? "),
		quickinput.ErrorMessage("Type yes or no."),
	)

A [Session] binds an alternate [LineReader] and [Printer], which is also how the loop is tested.
Custom conversion rules plug into the same loop through [Acquire].

# Boolean tokens

Boolean input is matched case-insensitively against [TrueTokens] and [FalseTokens].
The default sets are "y", "yes", "true", "1", "on" for true, and "n", "no", "false", "0", "off" for false.
Anything outside the two sets is a failed attempt. Both slices may be replaced to change the policy.

# Styling

Prompts and error messages are rendered with [lipgloss] through the [PromptStyle] and [ErrorStyle] package vars.
Replace them with zero styles to get plain text.

[lipgloss]: https://github.com/charmbracelet/lipgloss
*/
package quickinput
