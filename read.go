package quickinput

// Int reads a native-width signed integer from the [Default] session.
func Int(opts ...Option) (int, error) {
	return Default.Int(opts...)
}

func Int8(opts ...Option) (int8, error) {
	return Default.Int8(opts...)
}

func Int16(opts ...Option) (int16, error) {
	return Default.Int16(opts...)
}

func Int32(opts ...Option) (int32, error) {
	return Default.Int32(opts...)
}

func Int64(opts ...Option) (int64, error) {
	return Default.Int64(opts...)
}

// Uint reads a native-width unsigned integer from the [Default] session.
func Uint(opts ...Option) (uint, error) {
	return Default.Uint(opts...)
}

func Uint8(opts ...Option) (uint8, error) {
	return Default.Uint8(opts...)
}

func Uint16(opts ...Option) (uint16, error) {
	return Default.Uint16(opts...)
}

func Uint32(opts ...Option) (uint32, error) {
	return Default.Uint32(opts...)
}

func Uint64(opts ...Option) (uint64, error) {
	return Default.Uint64(opts...)
}

func Float32(opts ...Option) (float32, error) {
	return Default.Float32(opts...)
}

func Float64(opts ...Option) (float64, error) {
	return Default.Float64(opts...)
}

// Bool reads a boolean from the [Default] session, matched against [TrueTokens] and [FalseTokens].
func Bool(opts ...Option) (bool, error) {
	return Default.Bool(opts...)
}

// String reads a trimmed, non-empty string from the [Default] session.
// Blank lines are failed attempts.
func String(opts ...Option) (string, error) {
	return Default.String(opts...)
}

// RawString reads a single line from the [Default] session without trimming or validation.
func RawString(opts ...Option) (string, error) {
	return Default.RawString(opts...)
}

// Char reads the first rune of a non-blank line from the [Default] session.
func Char(opts ...Option) (rune, error) {
	return Default.Char(opts...)
}

// Password reads a non-empty secret from the [Default] session without echoing it
// when STDIN is a terminal.
func Password(opts ...Option) (string, error) {
	return Default.Password(opts...)
}

func (s *Session) Int(opts ...Option) (int, error) {
	return Acquire(s, IntRule[int](0), opts...)
}

func (s *Session) Int8(opts ...Option) (int8, error) {
	return Acquire(s, IntRule[int8](8), opts...)
}

func (s *Session) Int16(opts ...Option) (int16, error) {
	return Acquire(s, IntRule[int16](16), opts...)
}

func (s *Session) Int32(opts ...Option) (int32, error) {
	return Acquire(s, IntRule[int32](32), opts...)
}

func (s *Session) Int64(opts ...Option) (int64, error) {
	return Acquire(s, IntRule[int64](64), opts...)
}

func (s *Session) Uint(opts ...Option) (uint, error) {
	return Acquire(s, UintRule[uint](0), opts...)
}

func (s *Session) Uint8(opts ...Option) (uint8, error) {
	return Acquire(s, UintRule[uint8](8), opts...)
}

func (s *Session) Uint16(opts ...Option) (uint16, error) {
	return Acquire(s, UintRule[uint16](16), opts...)
}

func (s *Session) Uint32(opts ...Option) (uint32, error) {
	return Acquire(s, UintRule[uint32](32), opts...)
}

func (s *Session) Uint64(opts ...Option) (uint64, error) {
	return Acquire(s, UintRule[uint64](64), opts...)
}

func (s *Session) Float32(opts ...Option) (float32, error) {
	return Acquire(s, FloatRule[float32](32), opts...)
}

func (s *Session) Float64(opts ...Option) (float64, error) {
	return Acquire(s, FloatRule[float64](64), opts...)
}

func (s *Session) Bool(opts ...Option) (bool, error) {
	return Acquire(s, BoolRule(), opts...)
}

func (s *Session) String(opts ...Option) (string, error) {
	return Acquire(s, NonEmptyRule(), opts...)
}

func (s *Session) RawString(opts ...Option) (string, error) {
	return Acquire(s, RawStringRule(), opts...)
}

func (s *Session) Char(opts ...Option) (rune, error) {
	return Acquire(s, CharRule(), opts...)
}

// Password reads a non-empty secret without echo when the session's reader supports
// [PasswordReader] and is backed by a terminal. Blank input is retried like any other
// failed attempt.
func (s *Session) Password(opts ...Option) (string, error) {
	pwReader, ok := s.reader.(PasswordReader)
	if !ok {
		return s.String(opts...)
	}
	rule := NonEmptyRule()
	var set settings
	for _, opt := range opts {
		opt(&set)
	}
	if set.hasPrompt && len(set.prompt) > 0 {
		s.printer.Print(PromptStyle.Render(set.prompt))
	}
	for {
		raw, err := pwReader.ReadPassword()
		if err != nil {
			return "", err
		}
		// ReadPassword suppresses the user's newline along with the input.
		s.printer.Println()
		val, parseErr := rule.Parse(raw)
		if parseErr == nil {
			return val, nil
		}
		s.showError(set, rule.DefaultError)
	}
}
