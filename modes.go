package easyscreen

import "time"

// CursorVisibility selects how the terminal renders the cursor
type CursorVisibility uint8

const (
	CursorInvisible CursorVisibility = iota
	CursorVisible
	CursorHighlyVisible
)

var cursorVisibilityNames = [...]string{"Invisible", "Visible", "HighlyVisible"}

func (v CursorVisibility) String() string {
	if int(v) < len(cursorVisibilityNames) {
		return cursorVisibilityNames[v]
	}
	return "CursorVisibility(?)"
}

// InputMode selects how much processing the terminal driver applies to
// input before the application sees it.
//
// The cooked modes buffer input line by line and are only honored by
// providers that can leave raw mode; the tcell backend rejects them.
type InputMode uint8

const (
	// InputCooked is line-buffered input with interrupt handling.
	// The historical terminal default.
	InputCooked InputMode = iota

	// InputCharacter delivers input per keystroke while keeping
	// interrupt handling: Ctrl+C arrives as an interrupt input,
	// not as a character.
	InputCharacter

	// InputRawCooked is line-buffered input without interrupt handling
	InputRawCooked

	// InputRawCharacter delivers every byte unprocessed, including
	// control characters that would otherwise interrupt.
	InputRawCharacter
)

var inputModeNames = [...]string{"Cooked", "Character", "RawCooked", "RawCharacter"}

func (m InputMode) String() string {
	if int(m) < len(inputModeNames) {
		return inputModeNames[m]
	}
	return "InputMode(?)"
}

// TimeoutMode controls how long an input read waits for data.
// The zero value blocks forever. Values are comparable: two modes built
// from the same effective wait compare equal.
type TimeoutMode struct {
	limited bool
	ms      int
}

// Never blocks until input arrives. This is the zero value.
var Never = TimeoutMode{}

// Immediate returns instantly when no input is pending.
// Equivalent to WaitUpTo(0).
var Immediate = TimeoutMode{limited: true}

// WaitUpTo waits at most ms milliseconds for input.
// Negative durations are clamped to zero at construction, so
// WaitUpTo(-5) == WaitUpTo(0).
func WaitUpTo(ms int) TimeoutMode {
	if ms < 0 {
		ms = 0
	}
	return TimeoutMode{limited: true, ms: ms}
}

// Blocking reports whether the mode waits indefinitely
func (t TimeoutMode) Blocking() bool {
	return !t.limited
}

// Wait returns the maximum wait as a duration. Zero for both Immediate
// and Never; check Blocking to tell them apart.
func (t TimeoutMode) Wait() time.Duration {
	return time.Duration(t.ms) * time.Millisecond
}
