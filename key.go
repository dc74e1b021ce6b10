package easyscreen

// Key identifies a derived (non-character) input key. Derived keys are
// produced only while keypad translation is on; with translation off the
// raw escape bytes are delivered as individual character inputs instead.
type Key uint16

const (
	KeyNone Key = iota

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyBacktab // Shift+Tab

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// keySequence pairs a derived key with the escape sequence a terminal
// emits for it. Used in reverse: when keypad translation is off, the
// sequence is replayed byte by byte as character input.
type keySequence struct {
	key Key
	seq string
}

// rawSequences holds the xterm-style sequence for each derived key.
// Arrow and navigation keys use CSI, F1-F4 use SS3, backspace is DEL.
var rawSequences = []keySequence{
	{KeyUp, "\x1b[A"},
	{KeyDown, "\x1b[B"},
	{KeyRight, "\x1b[C"},
	{KeyLeft, "\x1b[D"},
	{KeyHome, "\x1b[H"},
	{KeyEnd, "\x1b[F"},
	{KeyInsert, "\x1b[2~"},
	{KeyDelete, "\x1b[3~"},
	{KeyPageUp, "\x1b[5~"},
	{KeyPageDown, "\x1b[6~"},
	{KeyBackspace, "\x7f"},
	{KeyBacktab, "\x1b[Z"},
	{KeyF1, "\x1bOP"},
	{KeyF2, "\x1bOQ"},
	{KeyF3, "\x1bOR"},
	{KeyF4, "\x1bOS"},
	{KeyF5, "\x1b[15~"},
	{KeyF6, "\x1b[17~"},
	{KeyF7, "\x1b[18~"},
	{KeyF8, "\x1b[19~"},
	{KeyF9, "\x1b[20~"},
	{KeyF10, "\x1b[21~"},
	{KeyF11, "\x1b[23~"},
	{KeyF12, "\x1b[24~"},
}

var rawSequenceMap = buildRawSequenceMap(rawSequences)

func buildRawSequenceMap(seqs []keySequence) map[Key]string {
	m := make(map[Key]string, len(seqs))
	for _, s := range seqs {
		m[s.key] = s.seq
	}
	return m
}

// rawSequence returns the byte sequence for a derived key,
// empty when the key has no known encoding
func rawSequence(key Key) string {
	return rawSequenceMap[key]
}
