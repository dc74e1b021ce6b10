package easyscreen

import (
	"fmt"
	"strings"
)

// MockBackend is an in-memory Backend for tests. It records every
// operation in call order, serves scripted inputs without blocking,
// and mirrors the state a real provider would hold, so assertions can
// inspect exactly what a Screen asked for.
type MockBackend struct {
	rows, cols int

	calls  []string
	inputs []Input

	initErr error

	colors    int
	pairLimit int

	refuseModes bool

	registered  map[ColorPair][2]Color
	currentPair ColorPair

	curRow, curCol int
	visibility     CursorVisibility

	mode    InputMode
	timeout TimeoutMode
	echo    bool
	keypad  bool
	mouse   bool

	scrolling    bool
	scrollTop    int
	scrollBottom int

	title string

	initCount int
	finiCount int
	inited    bool

	pushback []Input
	written  []rune
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock with an 80x24 surface and full color
// support. All input modes are accepted; use RefuseInputModes to test
// capability rejection.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		rows:       24,
		cols:       80,
		colors:     256,
		pairLimit:  256,
		registered: make(map[ColorPair][2]Color),
		visibility: CursorVisible,
		echo:       true,
	}
}

func (m *MockBackend) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

// --- Backend implementation ---

func (m *MockBackend) Init() error {
	m.record("Init")
	m.initCount++
	if m.initErr != nil {
		return m.initErr
	}
	m.inited = true
	m.scrollTop = 0
	m.scrollBottom = m.rows - 1
	return nil
}

func (m *MockBackend) Fini() {
	m.record("Fini")
	m.finiCount++
	m.inited = false
}

func (m *MockBackend) HasColors() bool {
	m.record("HasColors")
	return m.colors >= colorCount
}

func (m *MockBackend) MaxColors() int {
	m.record("MaxColors")
	return m.colors
}

func (m *MockBackend) MaxColorPairs() int {
	m.record("MaxColorPairs")
	return m.pairLimit
}

func (m *MockBackend) RegisterPair(id ColorPair, fg, bg Color) bool {
	m.record("RegisterPair %d %v %v", id, fg, bg)
	if id <= 0 || int(id) >= m.pairLimit {
		return false
	}
	m.registered[id] = [2]Color{fg, bg}
	return true
}

func (m *MockBackend) SetColorPair(id ColorPair) bool {
	m.record("SetColorPair %d", id)
	if id == 0 {
		m.currentPair = 0
		return true
	}
	if _, ok := m.registered[id]; !ok {
		return false
	}
	m.currentPair = id
	return true
}

func (m *MockBackend) SetAttribute(attr Attr, on bool) bool {
	m.record("SetAttribute %d %t", attr, on)
	return attr == AttrBold || attr == AttrUnderline
}

func (m *MockBackend) Size() (rows, cols int) {
	return m.rows, m.cols
}

func (m *MockBackend) MoveCursor(row, col int) bool {
	m.record("MoveCursor %d %d", row, col)
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return false
	}
	m.curRow, m.curCol = row, col
	return true
}

func (m *MockBackend) Cursor() (row, col int) {
	return m.curRow, m.curCol
}

func (m *MockBackend) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	m.record("SetCursorVisibility %v", v)
	if v > CursorHighlyVisible {
		return m.visibility, false
	}
	prev := m.visibility
	m.visibility = v
	return prev, true
}

func (m *MockBackend) SetInputMode(mode InputMode) bool {
	m.record("SetInputMode %v", mode)
	if m.refuseModes {
		return false
	}
	m.mode = mode
	return true
}

func (m *MockBackend) SetInputTimeout(t TimeoutMode) {
	m.record("SetInputTimeout %v", t)
	m.timeout = t
}

func (m *MockBackend) SetEcho(on bool) bool {
	m.record("SetEcho %t", on)
	m.echo = on
	return true
}

func (m *MockBackend) SetKeypad(on bool) bool {
	m.record("SetKeypad %t", on)
	m.keypad = on
	return true
}

func (m *MockBackend) SetMouse(on bool) bool {
	m.record("SetMouse %t", on)
	m.mouse = on
	return true
}

func (m *MockBackend) SetScrolling(on bool) bool {
	m.record("SetScrolling %t", on)
	m.scrolling = on
	return true
}

func (m *MockBackend) SetScrollRegion(top, bottom int) bool {
	m.record("SetScrollRegion %d %d", top, bottom)
	if top < 0 || bottom < top || bottom >= m.rows {
		return false
	}
	m.scrollTop, m.scrollBottom = top, bottom
	return true
}

func (m *MockBackend) WriteRune(r rune) bool {
	m.record("WriteRune %q", r)
	m.written = append(m.written, r)
	if m.curCol+1 < m.cols {
		m.curCol++
	} else if m.curRow+1 < m.rows {
		m.curRow++
		m.curCol = 0
	}
	return true
}

func (m *MockBackend) InsertRune(r rune) bool {
	m.record("InsertRune %q", r)
	return true
}

func (m *MockBackend) DeleteRune() bool {
	m.record("DeleteRune")
	return true
}

func (m *MockBackend) InsertDeleteLines(n int) bool {
	m.record("InsertDeleteLines %d", n)
	return true
}

func (m *MockBackend) Clear() bool {
	m.record("Clear")
	m.written = m.written[:0]
	m.curRow, m.curCol = 0, 0
	return true
}

func (m *MockBackend) Refresh() bool {
	m.record("Refresh")
	return true
}

// GetInput never blocks: scripted inputs are served FIFO after any
// pushback, and an empty queue reports ok=false regardless of the
// configured timeout.
func (m *MockBackend) GetInput() (Input, bool) {
	m.record("GetInput")
	if n := len(m.pushback); n > 0 {
		in := m.pushback[n-1]
		m.pushback = m.pushback[:n-1]
		return in, true
	}
	if len(m.inputs) > 0 {
		in := m.inputs[0]
		m.inputs = m.inputs[1:]
		return in, true
	}
	return Input{}, false
}

func (m *MockBackend) UngetInput(in Input) bool {
	m.record("UngetInput %v", in.Kind)
	m.pushback = append(m.pushback, in)
	return true
}

func (m *MockBackend) FlushInput() {
	m.record("FlushInput")
	m.pushback = m.pushback[:0]
	m.inputs = m.inputs[:0]
}

func (m *MockBackend) Beep() {
	m.record("Beep")
}

func (m *MockBackend) Flash() {
	m.record("Flash")
}

func (m *MockBackend) Resize(rows, cols int) bool {
	m.record("Resize %d %d", rows, cols)
	if rows == 0 && cols == 0 {
		return true
	}
	if rows <= 0 || cols <= 0 {
		return false
	}
	m.rows, m.cols = rows, cols
	if m.scrollBottom >= m.rows {
		m.scrollBottom = m.rows - 1
	}
	return true
}

func (m *MockBackend) SetTitle(title string) {
	m.record("SetTitle %q", title)
	m.title = title
}

// --- Test setup knobs ---

// SetSize changes the mock surface dimensions
func (m *MockBackend) SetSize(rows, cols int) {
	m.rows, m.cols = rows, cols
}

// SetColorCount sets the value MaxColors reports; below 8 the mock
// reports no color support
func (m *MockBackend) SetColorCount(n int) {
	m.colors = n
}

// SetPairLimit sets the value MaxColorPairs reports
func (m *MockBackend) SetPairLimit(n int) {
	m.pairLimit = n
}

// FailInit makes the next Init return err
func (m *MockBackend) FailInit(err error) {
	m.initErr = err
}

// RefuseInputModes makes every SetInputMode call return false
func (m *MockBackend) RefuseInputModes(refuse bool) {
	m.refuseModes = refuse
}

// QueueInput appends scripted inputs served by GetInput in order
func (m *MockBackend) QueueInput(inputs ...Input) {
	m.inputs = append(m.inputs, inputs...)
}

// --- Test inspection helpers ---

// Calls returns a copy of the recorded operations in call order
func (m *MockBackend) Calls() []string {
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount counts recorded operations by name
func (m *MockBackend) CallCount(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			n++
		}
	}
	return n
}

// Written returns everything passed to WriteRune since the last Clear
func (m *MockBackend) Written() string {
	return string(m.written)
}

// RegisteredPair reports the combination bound to a pair identity
func (m *MockBackend) RegisteredPair(id ColorPair) (fg, bg Color, ok bool) {
	c, ok := m.registered[id]
	return c[0], c[1], ok
}

// RegisteredCount returns how many pair identities are bound
func (m *MockBackend) RegisteredCount() int {
	return len(m.registered)
}

// CurrentPair returns the selected pair identity
func (m *MockBackend) CurrentPair() ColorPair {
	return m.currentPair
}

// Visibility returns the cursor visibility state
func (m *MockBackend) Visibility() CursorVisibility {
	return m.visibility
}

// Mode returns the input mode state
func (m *MockBackend) Mode() InputMode {
	return m.mode
}

// Timeout returns the input timeout state
func (m *MockBackend) Timeout() TimeoutMode {
	return m.timeout
}

// Echo reports the echo flag
func (m *MockBackend) Echo() bool {
	return m.echo
}

// Keypad reports the keypad translation flag
func (m *MockBackend) Keypad() bool {
	return m.keypad
}

// MouseEnabled reports the mouse reporting flag
func (m *MockBackend) MouseEnabled() bool {
	return m.mouse
}

// Scrolling reports the scrolling flag
func (m *MockBackend) Scrolling() bool {
	return m.scrolling
}

// ScrollRegion returns the configured margins
func (m *MockBackend) ScrollRegion() (top, bottom int) {
	return m.scrollTop, m.scrollBottom
}

// Title returns the last title set
func (m *MockBackend) Title() string {
	return m.title
}

// InitCount returns the number of Init calls
func (m *MockBackend) InitCount() int {
	return m.initCount
}

// FiniCount returns the number of Fini calls
func (m *MockBackend) FiniCount() int {
	return m.finiCount
}

// Inited reports whether the mock is between Init and Fini
func (m *MockBackend) Inited() bool {
	return m.inited
}
