package easyscreen

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrUnderline Attr = 1 << 1
)

// Backend abstracts the terminal capability provider.
// The default implementation wraps tcell; tests use MockBackend, and
// embedders can supply their own provider.
//
// All positions cross this boundary as (row, col) from the top-left.
// Operations returning bool report acceptance: false means the provider
// cannot or will not honor the request, and the prior state stands.
type Backend interface {
	// Lifecycle
	Init() error
	// Fini restores the terminal. Safe to call multiple times.
	Fini()

	// Color capabilities
	HasColors() bool
	MaxColors() int
	MaxColorPairs() int
	// RegisterPair binds a pair identity to a combination. Identities are
	// registered once, up front, and stay bound for the session.
	RegisterPair(id ColorPair, fg, bg Color) bool
	SetColorPair(id ColorPair) bool
	SetAttribute(attr Attr, on bool) bool

	// Cursor and geometry
	Size() (rows, cols int)
	// MoveCursor ignores out-of-bounds targets: the cursor stays where
	// it was and false is returned.
	MoveCursor(row, col int) bool
	Cursor() (row, col int)
	SetCursorVisibility(v CursorVisibility) (prev CursorVisibility, ok bool)

	// Input configuration
	SetInputMode(m InputMode) bool
	// SetInputTimeout applies to every subsequent GetInput. Cannot fail.
	SetInputTimeout(t TimeoutMode)
	SetEcho(on bool) bool
	SetKeypad(on bool) bool
	SetMouse(on bool) bool

	// Scrolling
	SetScrolling(on bool) bool
	SetScrollRegion(top, bottom int) bool

	// Output
	// WriteRune writes at the cursor and advances it. Newline clears to
	// the end of the line, tab advances to the next 8-column stop, and
	// other control bytes render in caret notation. Returns false when
	// the cursor cannot advance past the bottom-right cell.
	WriteRune(r rune) bool
	// InsertRune shifts the rest of the line right; the cursor stays.
	InsertRune(r rune) bool
	// DeleteRune shifts the rest of the line left; the cursor stays.
	DeleteRune() bool
	// InsertDeleteLines inserts n blank lines at the cursor row when
	// n > 0, deletes -n lines when n < 0, and does nothing at 0.
	InsertDeleteLines(n int) bool
	Clear() bool
	// Refresh makes all prior output visible
	Refresh() bool

	// Input
	// GetInput honors the configured timeout; ok=false reports an empty
	// poll or expired wait, never an error.
	GetInput() (Input, bool)
	// UngetInput pushes an input back for redelivery, last in first out
	UngetInput(in Input) bool
	// FlushInput discards pending and pushed-back input
	FlushInput()

	// Bells
	Beep()
	Flash()

	// Resize re-synchronizes provider bookkeeping with the terminal.
	// (0, 0) adopts the detected size; anything else requests one.
	Resize(rows, cols int) bool
	SetTitle(title string)
}
