package easyscreen

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// pairTableSize is the pair registry capacity. Slot 0 stays reserved
// for the provider's built-in default pair.
const pairTableSize = 256

// tabWidth is the classic 8-column tab stop spacing
const tabWidth = 8

// flashDuration is how long the visual bell stays inverted
const flashDuration = 80 * time.Millisecond

// tcellBackend adapts tcell's screen model to the Backend surface.
// tcell owns terminfo, raw mode, and event decoding; this adapter adds
// the state tcell has no notion of: a tracked cursor with write
// advancement, the pair registry, scrolling margins, and the input
// configuration (echo, keypad translation, timeouts, pushback).
type tcellBackend struct {
	screen tcell.Screen

	// newScreen defers provider construction to Init so a failed open
	// leaves nothing to unwind
	newScreen func() (tcell.Screen, error)

	events chan tcell.Event
	quit   chan struct{}

	pairs [pairTableSize]pairEntry
	style tcell.Style

	// Tracked cursor in (row, col)
	curRow     int
	curCol     int
	visibility CursorVisibility

	mode    InputMode
	timeout TimeoutMode
	echo    bool
	keypad  bool

	// pushback redelivers last in first out; synth carries raw key
	// bytes awaiting delivery while keypad translation is off
	pushback []Input
	synth    []rune

	scrolling    bool
	scrollTop    int
	scrollBottom int

	inited bool
}

type pairEntry struct {
	fg  Color
	bg  Color
	set bool
}

type savedCell struct {
	x, y  int
	r     rune
	comb  []rune
	style tcell.Style
}

func newTcellBackend() *tcellBackend {
	return &tcellBackend{newScreen: tcell.NewScreen}
}

// Init constructs and initializes the tcell screen and starts the event
// pump. The initial state mirrors a fresh curses session: echo on,
// keypad translation off, cursor visible at the origin, blocking input.
func (b *tcellBackend) Init() error {
	if b.inited {
		return nil
	}

	s, err := b.newScreen()
	if err != nil {
		return errors.Wrap(err, "screen construction")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "screen init")
	}

	b.screen = s
	b.style = tcell.StyleDefault
	s.SetStyle(b.style)

	b.curRow, b.curCol = 0, 0
	b.visibility = CursorVisible
	s.ShowCursor(0, 0)

	b.mode = InputCharacter
	b.timeout = Never
	b.echo = true
	b.keypad = false
	b.pushback = b.pushback[:0]
	b.synth = b.synth[:0]

	rows, _ := b.Size()
	b.scrolling = false
	b.scrollTop = 0
	b.scrollBottom = rows - 1

	b.events = make(chan tcell.Event, 256)
	b.quit = make(chan struct{})
	go s.ChannelEvents(b.events, b.quit)

	b.inited = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times.
func (b *tcellBackend) Fini() {
	if !b.inited {
		return
	}
	b.inited = false

	close(b.quit)
	b.screen.Fini()
}

// --- Color ---

func (b *tcellBackend) HasColors() bool {
	return b.screen.Colors() >= colorCount
}

func (b *tcellBackend) MaxColors() int {
	return b.screen.Colors()
}

func (b *tcellBackend) MaxColorPairs() int {
	return pairTableSize
}

func (b *tcellBackend) RegisterPair(id ColorPair, fg, bg Color) bool {
	if id <= 0 || int(id) >= pairTableSize {
		return false
	}
	b.pairs[id] = pairEntry{fg: fg, bg: bg, set: true}
	return true
}

func (b *tcellBackend) SetColorPair(id ColorPair) bool {
	if id == 0 {
		b.style = b.style.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault)
		return true
	}
	if id < 0 || int(id) >= pairTableSize || !b.pairs[id].set {
		return false
	}
	e := b.pairs[id]
	b.style = b.style.Foreground(paletteColor(e.fg)).Background(paletteColor(e.bg))
	return true
}

func (b *tcellBackend) SetAttribute(attr Attr, on bool) bool {
	switch attr {
	case AttrBold:
		b.style = b.style.Bold(on)
	case AttrUnderline:
		b.style = b.style.Underline(on)
	default:
		return false
	}
	return true
}

func paletteColor(c Color) tcell.Color {
	return tcell.PaletteColor(int(c.index()))
}

// --- Cursor and geometry ---

func (b *tcellBackend) Size() (rows, cols int) {
	w, h := b.screen.Size()
	return h, w
}

func (b *tcellBackend) MoveCursor(row, col int) bool {
	rows, cols := b.Size()
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return false
	}
	b.curRow, b.curCol = row, col
	b.syncCursor()
	return true
}

func (b *tcellBackend) Cursor() (row, col int) {
	return b.curRow, b.curCol
}

func (b *tcellBackend) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	if v > CursorHighlyVisible {
		return b.visibility, false
	}
	prev := b.visibility
	b.visibility = v
	switch v {
	case CursorInvisible:
		b.screen.HideCursor()
	case CursorVisible:
		b.screen.SetCursorStyle(tcell.CursorStyleDefault)
		b.screen.ShowCursor(b.curCol, b.curRow)
	case CursorHighlyVisible:
		b.screen.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
		b.screen.ShowCursor(b.curCol, b.curRow)
	}
	return prev, true
}

// syncCursor pushes the tracked position to the terminal cursor
func (b *tcellBackend) syncCursor() {
	if b.visibility == CursorInvisible {
		b.screen.HideCursor()
		return
	}
	b.screen.ShowCursor(b.curCol, b.curRow)
}

// --- Input configuration ---

// SetInputMode accepts the character-at-a-time modes. tcell holds the
// terminal in raw mode for event decoding, so the line-buffered cooked
// modes cannot be emulated above it.
func (b *tcellBackend) SetInputMode(m InputMode) bool {
	switch m {
	case InputCharacter, InputRawCharacter:
		b.mode = m
		return true
	}
	return false
}

func (b *tcellBackend) SetInputTimeout(t TimeoutMode) {
	b.timeout = t
}

func (b *tcellBackend) SetEcho(on bool) bool {
	b.echo = on
	return true
}

func (b *tcellBackend) SetKeypad(on bool) bool {
	b.keypad = on
	return true
}

func (b *tcellBackend) SetMouse(on bool) bool {
	if !b.screen.HasMouse() {
		return false
	}
	if on {
		b.screen.EnableMouse()
	} else {
		b.screen.DisableMouse()
	}
	return true
}

// --- Scrolling ---

func (b *tcellBackend) SetScrolling(on bool) bool {
	b.scrolling = on
	return true
}

func (b *tcellBackend) SetScrollRegion(top, bottom int) bool {
	rows, _ := b.Size()
	if top < 0 || bottom < top || bottom >= rows {
		return false
	}
	b.scrollTop, b.scrollBottom = top, bottom
	return true
}

// --- Output ---

func (b *tcellBackend) WriteRune(r rune) bool {
	switch r {
	case '\n':
		b.clearToEOL()
		return b.lineFeed()
	case '\r':
		b.curCol = 0
		b.syncCursor()
		return true
	case '\b':
		if b.curCol > 0 {
			b.curCol--
			b.syncCursor()
		}
		return true
	case '\t':
		return b.tab()
	}
	if r < 0x20 || r == 0x7f {
		// Control bytes render in caret notation
		if !b.putRune('^') {
			return false
		}
		return b.putRune(caretFor(r))
	}
	return b.putRune(r)
}

func caretFor(r rune) rune {
	if r == 0x7f {
		return '?'
	}
	return r + 0x40
}

// putRune writes one cell at the cursor and advances
func (b *tcellBackend) putRune(r rune) bool {
	b.screen.SetContent(b.curCol, b.curRow, r, nil, b.style)
	return b.advance()
}

// advance moves the cursor one cell forward, wrapping at the right
// margin. A wrap off the region's bottom margin scrolls when scrolling
// is enabled; otherwise the write stands but the cursor stays put and
// false is returned. The same holds at the last screen row below the
// region: only the region ever scrolls.
func (b *tcellBackend) advance() bool {
	rows, cols := b.Size()
	if b.curCol+1 < cols {
		b.curCol++
		b.syncCursor()
		return true
	}
	switch {
	case b.curRow == b.regionBottom(rows):
		if b.scrolling {
			b.scrollUp()
			b.curCol = 0
			b.syncCursor()
			return true
		}
	case b.curRow < rows-1:
		b.curRow++
		b.curCol = 0
		b.syncCursor()
		return true
	}
	b.syncCursor()
	return false
}

// lineFeed starts a new line, scrolling at the region's bottom margin
// when scrolling is enabled
func (b *tcellBackend) lineFeed() bool {
	b.curCol = 0
	rows, _ := b.Size()
	switch {
	case b.curRow == b.regionBottom(rows):
		if b.scrolling {
			b.scrollUp()
			b.syncCursor()
			return true
		}
	case b.curRow < rows-1:
		b.curRow++
		b.syncCursor()
		return true
	}
	b.syncCursor()
	return false
}

// regionBottom is the scroll region's bottom margin clamped to the
// last screen row
func (b *tcellBackend) regionBottom(rows int) int {
	if b.scrollBottom >= rows {
		return rows - 1
	}
	return b.scrollBottom
}

func (b *tcellBackend) tab() bool {
	stop := (b.curCol/tabWidth + 1) * tabWidth
	for b.curCol < stop {
		prev := b.curCol
		if !b.putRune(' ') {
			return false
		}
		if b.curCol <= prev {
			// Wrapped onto a new line; the stop is satisfied
			break
		}
	}
	return true
}

func (b *tcellBackend) clearToEOL() {
	_, cols := b.Size()
	for x := b.curCol; x < cols; x++ {
		b.screen.SetContent(x, b.curRow, ' ', nil, b.style)
	}
}

// scrollUp shifts the scroll region up one line, losing its top line
// and blanking its bottom one
func (b *tcellBackend) scrollUp() {
	rows, cols := b.Size()
	top, bottom := b.scrollTop, b.regionBottom(rows)
	if top > bottom {
		return
	}
	for y := top; y < bottom; y++ {
		b.copyRow(y+1, y, cols)
	}
	b.blankRow(bottom, cols)
}

func (b *tcellBackend) copyRow(src, dst, cols int) {
	for x := 0; x < cols; x++ {
		pr, comb, st, _ := b.screen.GetContent(x, src)
		b.screen.SetContent(x, dst, pr, comb, st)
	}
}

func (b *tcellBackend) blankRow(row, cols int) {
	for x := 0; x < cols; x++ {
		b.screen.SetContent(x, row, ' ', nil, b.style)
	}
}

func (b *tcellBackend) InsertRune(r rune) bool {
	_, cols := b.Size()
	for x := cols - 1; x > b.curCol; x-- {
		pr, comb, st, _ := b.screen.GetContent(x-1, b.curRow)
		b.screen.SetContent(x, b.curRow, pr, comb, st)
	}
	b.screen.SetContent(b.curCol, b.curRow, r, nil, b.style)
	return true
}

func (b *tcellBackend) DeleteRune() bool {
	_, cols := b.Size()
	for x := b.curCol; x < cols-1; x++ {
		pr, comb, st, _ := b.screen.GetContent(x+1, b.curRow)
		b.screen.SetContent(x, b.curRow, pr, comb, st)
	}
	b.screen.SetContent(cols-1, b.curRow, ' ', nil, b.style)
	return true
}

func (b *tcellBackend) InsertDeleteLines(n int) bool {
	if n == 0 {
		return true
	}
	rows, cols := b.Size()
	if b.curRow >= rows {
		return false
	}
	if n > 0 {
		for i := 0; i < n; i++ {
			b.insertLineAt(b.curRow, rows, cols)
		}
	} else {
		for i := 0; i < -n; i++ {
			b.deleteLineAt(b.curRow, rows, cols)
		}
	}
	return true
}

// insertLineAt pushes the cursor row and everything below it down one,
// losing the last row
func (b *tcellBackend) insertLineAt(row, rows, cols int) {
	for y := rows - 1; y > row; y-- {
		b.copyRow(y-1, y, cols)
	}
	b.blankRow(row, cols)
}

// deleteLineAt removes the cursor row, pulling everything below it up
// and blanking the last row
func (b *tcellBackend) deleteLineAt(row, rows, cols int) {
	for y := row; y < rows-1; y++ {
		b.copyRow(y+1, y, cols)
	}
	b.blankRow(rows-1, cols)
}

func (b *tcellBackend) Clear() bool {
	b.screen.Fill(' ', b.style)
	b.curRow, b.curCol = 0, 0
	b.syncCursor()
	return true
}

func (b *tcellBackend) Refresh() bool {
	b.screen.Show()
	return true
}

// --- Bells ---

func (b *tcellBackend) Beep() {
	if err := b.screen.Beep(); err != nil {
		b.invertFlash()
	}
}

func (b *tcellBackend) Flash() {
	b.invertFlash()
}

// invertFlash renders a visual bell by briefly reversing every cell
func (b *tcellBackend) invertFlash() {
	rows, cols := b.Size()
	saved := make([]savedCell, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pr, comb, st, _ := b.screen.GetContent(x, y)
			saved = append(saved, savedCell{x: x, y: y, r: pr, comb: comb, style: st})
			b.screen.SetContent(x, y, pr, comb, st.Reverse(true))
		}
	}
	b.screen.Show()
	time.Sleep(flashDuration)
	for _, c := range saved {
		b.screen.SetContent(c.x, c.y, c.r, c.comb, c.style)
	}
	b.screen.Show()
}

// --- Input ---

func (b *tcellBackend) GetInput() (Input, bool) {
	if in, ok := b.takeBuffered(); ok {
		return in, true
	}

	var timer <-chan time.Time
	if !b.timeout.Blocking() {
		wait := b.timeout.Wait()
		if wait == 0 {
			// Immediate: only already-queued events satisfy the poll
			for {
				select {
				case ev, ok := <-b.events:
					if !ok {
						return Input{}, false
					}
					if in, ok := b.translate(ev); ok {
						return in, true
					}
				default:
					return Input{}, false
				}
			}
		}
		t := time.NewTimer(wait)
		defer t.Stop()
		timer = t.C
	}

	// A nil timer channel blocks forever, which is exactly the
	// behavior wanted for the blocking mode
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return Input{}, false
			}
			if in, ok := b.translate(ev); ok {
				return in, true
			}
		case <-timer:
			return Input{}, false
		}
	}
}

func (b *tcellBackend) UngetInput(in Input) bool {
	b.pushback = append(b.pushback, in)
	return true
}

func (b *tcellBackend) FlushInput() {
	b.pushback = b.pushback[:0]
	b.synth = b.synth[:0]
	for {
		select {
		case _, ok := <-b.events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// takeBuffered returns pushed-back input first, then any synthesized
// raw key bytes
func (b *tcellBackend) takeBuffered() (Input, bool) {
	if n := len(b.pushback); n > 0 {
		in := b.pushback[n-1]
		b.pushback = b.pushback[:n-1]
		return in, true
	}
	if len(b.synth) > 0 {
		r := b.synth[0]
		b.synth = b.synth[1:]
		return b.deliver(Input{Kind: InputRune, Rune: r}), true
	}
	return Input{}, false
}

// deliver applies echo to fresh character input on its way out
func (b *tcellBackend) deliver(in Input) Input {
	if b.echo && in.Kind == InputRune {
		b.WriteRune(in.Rune)
		b.screen.Show()
	}
	return in
}

func (b *tcellBackend) translate(ev tcell.Event) (Input, bool) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return b.translateKey(tev)
	case *tcell.EventResize:
		w, h := tev.Size()
		return Input{Kind: InputResize, Rows: h, Cols: w}, true
	case *tcell.EventMouse:
		x, y := tev.Position()
		return Input{
			Kind:     InputMouse,
			MouseRow: y,
			MouseCol: x,
			Buttons:  translateButtons(tev.Buttons()),
			Mod:      translateMods(tev.Modifiers()),
		}, true
	case *tcell.EventInterrupt:
		return Input{Kind: InputInterrupt}, true
	}
	return Input{}, false
}

func (b *tcellBackend) translateKey(ev *tcell.EventKey) (Input, bool) {
	mod := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return b.deliver(Input{Kind: InputRune, Rune: ev.Rune(), Mod: mod}), true
	case tcell.KeyEnter:
		// Newline translation, the historical terminal default
		return b.deliver(Input{Kind: InputRune, Rune: '\n', Mod: mod}), true
	case tcell.KeyTab:
		return b.deliver(Input{Kind: InputRune, Rune: '\t', Mod: mod}), true
	case tcell.KeyEscape:
		return Input{Kind: InputRune, Rune: 0x1b, Mod: mod}, true
	case tcell.KeyCtrlC:
		if b.mode == InputCharacter {
			// Character mode keeps the interrupt key out of the
			// data stream
			return Input{Kind: InputInterrupt}, true
		}
		return Input{Kind: InputRune, Rune: 0x03, Mod: mod}, true
	}

	if k, ok := derivedKey(ev.Key()); ok {
		if !b.keypad {
			// Translation off: replay the raw byte sequence as
			// individual character inputs
			seq := rawSequence(k)
			if seq == "" {
				return Input{}, false
			}
			b.synth = append(b.synth, []rune(seq)...)
			return b.takeBuffered()
		}
		return Input{Kind: InputKey, Key: k, Mod: mod}, true
	}

	if key := ev.Key(); key < 0x20 {
		// Remaining control bytes pass through as characters
		return b.deliver(Input{Kind: InputRune, Rune: rune(key), Mod: mod}), true
	}
	return Input{}, false
}

var tcellDerivedKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func derivedKey(k tcell.Key) (Key, bool) {
	key, ok := tcellDerivedKeys[k]
	return key, ok
}

func translateMods(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func translateButtons(m tcell.ButtonMask) MouseButton {
	var btn MouseButton
	if m&tcell.Button1 != 0 {
		btn |= Button1
	}
	if m&tcell.Button2 != 0 {
		btn |= Button2
	}
	if m&tcell.Button3 != 0 {
		btn |= Button3
	}
	if m&tcell.WheelUp != 0 {
		btn |= WheelUp
	}
	if m&tcell.WheelDown != 0 {
		btn |= WheelDown
	}
	return btn
}

// --- Resize and title ---

func (b *tcellBackend) Resize(rows, cols int) bool {
	if rows == 0 && cols == 0 {
		b.screen.Sync()
		b.clampToSize()
		return true
	}
	if rows <= 0 || cols <= 0 {
		return false
	}
	b.screen.SetSize(cols, rows)
	b.clampToSize()
	return true
}

// clampToSize pulls bookkeeping back inside the current dimensions
// after the surface changes size
func (b *tcellBackend) clampToSize() {
	rows, cols := b.Size()
	if b.curRow >= rows {
		b.curRow = rows - 1
	}
	if b.curCol >= cols {
		b.curCol = cols - 1
	}
	if b.scrollBottom >= rows {
		b.scrollBottom = rows - 1
	}
	if b.scrollTop > b.scrollBottom {
		b.scrollTop = 0
	}
	b.syncCursor()
}

func (b *tcellBackend) SetTitle(title string) {
	b.screen.SetTitle(title)
}
