package easyscreen

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenClaimsSingleSession(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m1 := NewMockBackend()
	s1, err := OpenBackend(m1)
	require.NoError(err)

	// A second open fails before the provider is touched
	m2 := NewMockBackend()
	s2, err := OpenBackend(m2)
	assert.ErrorIs(err, ErrScreenActive)
	assert.Nil(s2)
	assert.Empty(m2.Calls())

	// Closing frees the slot for a fresh session
	require.NoError(s1.Close())
	s2, err = OpenBackend(m2)
	require.NoError(err)
	assert.Equal(1, m2.InitCount())
	require.NoError(s2.Close())
}

func TestOpenReleasesSlotOnInitFailure(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	boom := errors.New("terminal exploded")
	m := NewMockBackend()
	m.FailInit(boom)

	s, err := OpenBackend(m)
	assert.Nil(s)
	require.Error(err)
	assert.ErrorIs(err, boom)
	assert.Contains(err.Error(), "easyscreen: open")
	assert.False(m.Inited())

	m2 := NewMockBackend()
	s2, err := OpenBackend(m2)
	require.NoError(err)
	require.NoError(s2.Close())
}

func TestCloseIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)

	require.NoError(s.Close())
	require.NoError(s.Close())
	require.NoError(s.Close())
	assert.Equal(1, m.FiniCount())
}

func TestOpenRegistersAllPairs(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.True(s.IsColorTerminal())
	assert.Equal(64, m.RegisteredCount())
	assert.Equal(64, m.CallCount("RegisterPair"))

	fg, bg, ok := m.RegisteredPair(NewColorPair(Red, Blue))
	assert.True(ok)
	assert.Equal(Red, fg)
	assert.Equal(Blue, bg)

	s.SetColorPair(NewColorPair(Green, Yellow))
	assert.Equal(NewColorPair(Green, Yellow), m.CurrentPair())
}

func TestMonochromeWhenColorsMissing(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	m.SetColorCount(2)

	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.False(s.IsColorTerminal())
	assert.Equal(0, m.CallCount("RegisterPair"))

	// Pair selection degrades to a no-op instead of failing
	s.SetColorPair(DefaultColorPair())
	assert.Equal(0, m.CallCount("SetColorPair"))
}

func TestMonochromeWhenPairLimitTooSmall(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	m.SetPairLimit(32)

	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.False(s.IsColorTerminal())
	assert.Equal(0, m.CallCount("RegisterPair"))
}

func TestAutoResizeOnResizeInput(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	m.QueueInput(ResizeInput(30, 100))
	in, ok := s.GetInput()
	require.True(ok)
	assert.Equal(InputResize, in.Kind)
	assert.Equal(30, in.Rows)
	assert.Equal(100, in.Cols)

	// The screen re-synchronized against the detected size
	assert.Equal(1, m.CallCount("Resize"))
	assert.Contains(m.Calls(), "Resize 0 0")

	// With auto-resize off the input is delivered untouched
	s.SetAutoResize(false)
	m.QueueInput(ResizeInput(10, 20))
	in, ok = s.GetInput()
	require.True(ok)
	assert.Equal(InputResize, in.Kind)
	assert.Equal(1, m.CallCount("Resize"))
}

func TestManualResize(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.True(s.ResizeTerm(30, 100))
	rows, cols := s.RowColCount()
	assert.Equal(30, rows)
	assert.Equal(100, cols)

	assert.False(s.ResizeTerm(-1, 100))
	assert.True(s.ResizeTerm(0, 0))
}

func TestCursorCoordinateViews(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	// 24 rows: row 5 from the top is y 18 from the bottom
	assert.True(s.MoveRC(5, 10))
	row, col := s.CursorRC()
	assert.Equal(5, row)
	assert.Equal(10, col)
	x, y := s.CursorXY()
	assert.Equal(10, x)
	assert.Equal(18, y)

	// y 0 is the bottom row
	assert.True(s.MoveXY(3, 0))
	row, col = s.CursorRC()
	assert.Equal(23, row)
	assert.Equal(3, col)

	// Out-of-bounds targets leave the cursor unmoved
	assert.False(s.MoveRC(24, 0))
	assert.False(s.MoveXY(0, 24))
	row, col = s.CursorRC()
	assert.Equal(23, row)
	assert.Equal(3, col)
}

func TestConfigurationForwarding(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.True(s.SetEcho(false))
	assert.False(m.Echo())

	assert.True(s.SetKeypad(true))
	assert.True(m.Keypad())

	assert.True(s.SetMouse(true))
	assert.True(m.MouseEnabled())

	assert.True(s.SetInputMode(InputRawCharacter))
	assert.Equal(InputRawCharacter, m.Mode())

	// Provider refusal passes through unchanged
	m.RefuseInputModes(true)
	assert.False(s.SetInputMode(InputCooked))
	assert.Equal(InputRawCharacter, m.Mode())
	m.RefuseInputModes(false)

	s.SetInputTimeout(WaitUpTo(100))
	assert.Equal(WaitUpTo(100), m.Timeout())

	prev, ok := s.SetCursorVisibility(CursorInvisible)
	assert.True(ok)
	assert.Equal(CursorVisible, prev)
	assert.Equal(CursorInvisible, m.Visibility())

	assert.True(s.SetBold(true))
	assert.True(s.SetUnderline(true))
	assert.Equal(2, m.CallCount("SetAttribute"))

	assert.True(s.SetScrolling(true))
	assert.True(m.Scrolling())

	assert.True(s.SetScrollRegion(2, 5))
	top, bottom := m.ScrollRegion()
	assert.Equal(2, top)
	assert.Equal(5, bottom)
	assert.False(s.SetScrollRegion(5, 30))

	s.SetTitle("session test")
	assert.Equal("session test", m.Title())

	rows, cols := s.RowColCount()
	assert.Equal(24, rows)
	assert.Equal(80, cols)
}

func TestDrawingForwarding(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	assert.True(s.Print("hi"))
	assert.True(s.PrintChar('!'))
	assert.Equal("hi!", m.Written())

	assert.True(s.InsertChar('x'))
	assert.Equal(1, m.CallCount("InsertRune"))
	assert.True(s.DeleteChar())
	assert.Equal(1, m.CallCount("DeleteRune"))

	assert.True(s.InsertLine())
	assert.Contains(m.Calls(), "InsertDeleteLines 1")
	assert.True(s.DeleteLine())
	assert.Contains(m.Calls(), "InsertDeleteLines -1")
	assert.True(s.InsertDeleteLines(3))
	assert.Contains(m.Calls(), "InsertDeleteLines 3")

	assert.True(s.Clear())
	assert.Equal("", m.Written())
	row, col := s.CursorRC()
	assert.Equal(0, row)
	assert.Equal(0, col)

	assert.True(s.Refresh())
	s.Beep()
	s.Flash()
	assert.Equal(1, m.CallCount("Refresh"))
	assert.Equal(1, m.CallCount("Beep"))
	assert.Equal(1, m.CallCount("Flash"))
}

func TestInputForwarding(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	defer s.Close()

	m.QueueInput(RuneInput('a'), KeyInput(KeyF5))

	in, ok := s.GetInput()
	require.True(ok)
	assert.Equal(InputRune, in.Kind)
	assert.Equal('a', in.Rune)

	in, ok = s.GetInput()
	require.True(ok)
	assert.Equal(InputKey, in.Kind)
	assert.Equal(KeyF5, in.Key)

	// Pushed-back input comes before queued input, last in first out
	m.QueueInput(RuneInput('q'))
	assert.True(s.UngetInput(RuneInput('1')))
	assert.True(s.UngetInput(RuneInput('2')))

	in, _ = s.GetInput()
	assert.Equal('2', in.Rune)
	in, _ = s.GetInput()
	assert.Equal('1', in.Rune)
	in, _ = s.GetInput()
	assert.Equal('q', in.Rune)

	m.QueueInput(RuneInput('x'))
	s.FlushInput()
	_, ok = s.GetInput()
	assert.False(ok)
}

func TestClosedScreenIsInert(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	require.NoError(s.Close())

	before := len(m.Calls())

	assert.False(s.MoveRC(1, 1))
	assert.False(s.MoveXY(1, 1))
	assert.False(s.Print("late"))
	assert.False(s.PrintChar('x'))
	assert.False(s.InsertChar('x'))
	assert.False(s.DeleteChar())
	assert.False(s.Clear())
	assert.False(s.Refresh())
	assert.False(s.SetEcho(false))
	assert.False(s.SetKeypad(true))
	assert.False(s.SetMouse(true))
	assert.False(s.SetInputMode(InputRawCharacter))
	assert.False(s.SetScrolling(true))
	assert.False(s.SetScrollRegion(1, 2))
	assert.False(s.SetBold(true))
	assert.False(s.ResizeTerm(10, 10))
	assert.False(s.UngetInput(RuneInput('x')))

	_, ok := s.SetCursorVisibility(CursorInvisible)
	assert.False(ok)

	_, ok = s.GetInput()
	assert.False(ok)

	s.SetColorPair(DefaultColorPair())
	s.SetInputTimeout(Immediate)
	s.SetTitle("late")
	s.Beep()
	s.Flash()
	s.FlushInput()

	assert.Equal(before, len(m.Calls()))
}

func TestTraceOutput(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var buf bytes.Buffer
	TraceTo(&buf)
	defer TraceTo(io.Discard)

	m := NewMockBackend()
	s, err := OpenBackend(m)
	require.NoError(err)
	require.NoError(s.Close())

	assert.Contains(buf.String(), "session opened")
	assert.Contains(buf.String(), "session closed")
}
