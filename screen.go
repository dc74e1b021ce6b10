package easyscreen

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// screenActive is the process-wide session flag. It flips false to true
// only through a successful Open and back only through Close, so at
// most one Screen exists at a time.
var screenActive atomic.Bool

// Screen is the handle for the process's single terminal session. It
// owns the Backend exclusively and caches nothing the terminal can
// change behind its back; dimensions in particular are queried fresh
// on every use.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	backend Backend

	colorSupport bool
	autoResize   bool

	mu     sync.Mutex
	closed bool
}

// Open claims the session slot and starts a terminal session on the
// tcell provider. A second Open while a session is active fails with
// ErrScreenActive before any terminal state is touched. Provider
// initialization failure releases the slot and returns the wrapped
// cause; both errors are recoverable.
func Open() (*Screen, error) {
	return OpenBackend(newTcellBackend())
}

// OpenBackend is Open on a caller-supplied provider
func OpenBackend(b Backend) (*Screen, error) {
	if !screenActive.CompareAndSwap(false, true) {
		return nil, ErrScreenActive
	}

	if err := b.Init(); err != nil {
		screenActive.Store(false)
		return nil, errors.Wrap(err, "easyscreen: open")
	}

	s := &Screen{backend: b, autoResize: true}
	s.colorSupport = b.HasColors()
	if s.colorSupport {
		s.colorSupport = registerAllPairs(b)
	}

	rows, cols := b.Size()
	traceLog.WithFields(logrus.Fields{
		"rows":   rows,
		"cols":   cols,
		"colors": s.colorSupport,
	}).Debug("session opened")
	return s, nil
}

// registerAllPairs binds every color combination to its identity value
// up front, so SetColorPair is a plain selection afterwards. A provider
// whose limits cannot hold the table is an internal inconsistency:
// debug builds panic, production builds run monochrome.
func registerAllPairs(b Backend) bool {
	maxID := NewColorPair(White, White)
	if b.MaxColors() < colorCount || int(maxID) >= b.MaxColorPairs() {
		assertf(false, "pair table exceeds provider limits: colors=%d pairs=%d",
			b.MaxColors(), b.MaxColorPairs())
		traceLog.WithFields(logrus.Fields{
			"colors": b.MaxColors(),
			"pairs":  b.MaxColorPairs(),
		}).Warn("color table rejected, running monochrome")
		return false
	}

	for _, fg := range AllColors {
		for _, bg := range AllColors {
			id := NewColorPair(fg, bg)
			if !b.RegisterPair(id, fg, bg) {
				assertf(false, "pair registration refused: id=%d", id)
				traceLog.WithField("pair", int(id)).Warn("pair registration refused, running monochrome")
				return false
			}
		}
	}
	return true
}

// Close restores the terminal and releases the session slot, in that
// order: terminal restoration always happens before a new Open can
// succeed. Safe to call multiple times.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.backend.Fini()
	s.closed = true
	screenActive.Store(false)

	traceLog.Debug("session closed")
	return nil
}

// Backend exposes the underlying provider for capabilities this
// package does not wrap. The Screen keeps ownership: do not Fini it.
func (s *Screen) Backend() Backend {
	return s.backend
}

// IsColorTerminal reports whether the session has working color pairs
func (s *Screen) IsColorTerminal() bool {
	return s.colorSupport
}

// --- Configuration ---

// SetCursorVisibility returns the previous visibility on success
func (s *Screen) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	if s.closed {
		return CursorInvisible, false
	}
	return s.backend.SetCursorVisibility(v)
}

func (s *Screen) SetInputMode(m InputMode) bool {
	if s.closed {
		return false
	}
	return s.backend.SetInputMode(m)
}

// SetInputTimeout applies to every subsequent GetInput. Cannot fail.
func (s *Screen) SetInputTimeout(t TimeoutMode) {
	if s.closed {
		return
	}
	s.backend.SetInputTimeout(t)
}

func (s *Screen) SetEcho(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetEcho(on)
}

// SetKeypad controls translation of derived keys. Off delivers their
// raw byte sequences as character input instead.
func (s *Screen) SetKeypad(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetKeypad(on)
}

// SetMouse enables provider mouse reporting; mouse activity then
// arrives through GetInput.
func (s *Screen) SetMouse(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetMouse(on)
}

func (s *Screen) SetBold(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetAttribute(AttrBold, on)
}

func (s *Screen) SetUnderline(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetAttribute(AttrUnderline, on)
}

// SetColorPair selects the pair for subsequent writes. Without color
// support this is a no-op.
func (s *Screen) SetColorPair(p ColorPair) {
	if s.closed || !s.colorSupport {
		return
	}
	s.backend.SetColorPair(p)
}

func (s *Screen) SetScrolling(on bool) bool {
	if s.closed {
		return false
	}
	return s.backend.SetScrolling(on)
}

// SetScrollRegion restricts scrolling to the rows top through bottom
// inclusive
func (s *Screen) SetScrollRegion(top, bottom int) bool {
	if s.closed {
		return false
	}
	return s.backend.SetScrollRegion(top, bottom)
}

// SetTitle names the terminal window where the terminal supports it
func (s *Screen) SetTitle(title string) {
	if s.closed {
		return
	}
	s.backend.SetTitle(title)
}

// SetAutoResize controls whether GetInput re-synchronizes provider
// bookkeeping when a resize input arrives. On by default. When off,
// callers must invoke ResizeTerm(0, 0) themselves on resize inputs or
// drawing operates against stale dimensions.
func (s *Screen) SetAutoResize(on bool) {
	s.autoResize = on
}

// --- Geometry ---

// RowColCount returns the current dimensions, queried fresh: a resize
// can change the answer between calls.
func (s *Screen) RowColCount() (rows, cols int) {
	return s.backend.Size()
}

// MoveRC places the cursor by top-left (row, col). Out-of-bounds
// targets are ignored: the cursor stays and false is returned.
func (s *Screen) MoveRC(row, col int) bool {
	if s.closed {
		return false
	}
	return s.backend.MoveCursor(row, col)
}

// MoveXY places the cursor by bottom-left (x, y), translating against
// the live row count
func (s *Screen) MoveXY(x, y int) bool {
	if s.closed {
		return false
	}
	rows, _ := s.backend.Size()
	row, col := xyToRC(x, y, rows)
	return s.backend.MoveCursor(row, col)
}

// CursorRC reports the cursor position as top-left (row, col)
func (s *Screen) CursorRC() (row, col int) {
	return s.backend.Cursor()
}

// CursorXY reports the cursor position as bottom-left (x, y)
func (s *Screen) CursorXY() (x, y int) {
	rows, _ := s.backend.Size()
	row, col := s.backend.Cursor()
	return rcToXY(row, col, rows)
}

// --- Drawing ---

// Print writes the string at the cursor, advancing through it. Stops
// at the first rune the provider refuses.
func (s *Screen) Print(str string) bool {
	if s.closed {
		return false
	}
	for _, r := range str {
		if !s.backend.WriteRune(r) {
			return false
		}
	}
	return true
}

// PrintChar writes a single rune at the cursor and advances
func (s *Screen) PrintChar(r rune) bool {
	if s.closed {
		return false
	}
	return s.backend.WriteRune(r)
}

// InsertChar inserts a rune at the cursor, shifting the rest of the
// line right. The cursor stays.
func (s *Screen) InsertChar(r rune) bool {
	if s.closed {
		return false
	}
	return s.backend.InsertRune(r)
}

// DeleteChar removes the rune under the cursor, shifting the rest of
// the line left
func (s *Screen) DeleteChar() bool {
	if s.closed {
		return false
	}
	return s.backend.DeleteRune()
}

// DeleteLine removes the cursor's line, pulling lower lines up
func (s *Screen) DeleteLine() bool {
	if s.closed {
		return false
	}
	return s.backend.InsertDeleteLines(-1)
}

// InsertLine pushes the cursor's line and everything below it down one
func (s *Screen) InsertLine() bool {
	if s.closed {
		return false
	}
	return s.backend.InsertDeleteLines(1)
}

// InsertDeleteLines inserts n blank lines at the cursor row when
// n > 0, deletes -n lines when n < 0, and does nothing at 0
func (s *Screen) InsertDeleteLines(n int) bool {
	if s.closed {
		return false
	}
	return s.backend.InsertDeleteLines(n)
}

func (s *Screen) Clear() bool {
	if s.closed {
		return false
	}
	return s.backend.Clear()
}

// Refresh makes all drawing since the last refresh visible
func (s *Screen) Refresh() bool {
	if s.closed {
		return false
	}
	return s.backend.Refresh()
}

func (s *Screen) Beep() {
	if s.closed {
		return
	}
	s.backend.Beep()
}

func (s *Screen) Flash() {
	if s.closed {
		return
	}
	s.backend.Flash()
}

// ResizeTerm re-synchronizes provider bookkeeping with the terminal
// size. (0, 0) adopts the detected size; anything else requests one.
// This is the manual path when auto-resize is off.
func (s *Screen) ResizeTerm(rows, cols int) bool {
	if s.closed {
		return false
	}
	return s.backend.Resize(rows, cols)
}

// --- Input ---

// GetInput waits for input per the configured timeout; ok=false means
// the wait expired with nothing pending. With auto-resize on, a resize
// input re-synchronizes provider bookkeeping before being returned;
// the input is still delivered so callers can redraw.
func (s *Screen) GetInput() (Input, bool) {
	if s.closed {
		return Input{}, false
	}
	in, ok := s.backend.GetInput()
	if ok && in.Kind == InputResize && s.autoResize {
		s.backend.Resize(0, 0)
		traceLog.WithFields(logrus.Fields{
			"rows": in.Rows,
			"cols": in.Cols,
		}).Debug("auto resize")
	}
	return in, ok
}

// UngetInput pushes an input back for redelivery ahead of anything
// pending, last in first out
func (s *Screen) UngetInput(in Input) bool {
	if s.closed {
		return false
	}
	return s.backend.UngetInput(in)
}

// FlushInput discards pending and pushed-back input
func (s *Screen) FlushInput() {
	if s.closed {
		return
	}
	s.backend.FlushInput()
}
