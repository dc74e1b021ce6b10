package easyscreen

// InputKind distinguishes input event categories
type InputKind uint8

const (
	// InputNone is the zero value, returned alongside ok=false
	InputNone InputKind = iota

	// InputRune is a character, including control bytes in raw modes
	InputRune

	// InputKey is a derived key such as an arrow or function key
	InputKey

	// InputMouse is a mouse press, release, or wheel movement
	InputMouse

	// InputResize reports new terminal dimensions
	InputResize

	// InputInterrupt is the interrupt character in modes that
	// intercept it, or a synthetic wakeup posted by the provider
	InputInterrupt
)

var inputKindNames = [...]string{"None", "Rune", "Key", "Mouse", "Resize", "Interrupt"}

func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return "InputKind(?)"
}

// MouseButton is a bitmask of pressed buttons and wheel motion
type MouseButton uint8

const (
	ButtonNone MouseButton = 0
	Button1    MouseButton = 1 << 0 // Left
	Button2    MouseButton = 1 << 1 // Right
	Button3    MouseButton = 1 << 2 // Middle
	WheelUp    MouseButton = 1 << 3
	WheelDown  MouseButton = 1 << 4
)

// Input is a single decoded input event
type Input struct {
	Kind InputKind
	Rune rune     // InputRune
	Key  Key      // InputKey
	Mod  Modifier // InputRune, InputKey, InputMouse

	// InputResize dimensions
	Rows int
	Cols int

	// InputMouse position and buttons
	MouseRow int
	MouseCol int
	Buttons  MouseButton
}

// RuneInput builds a character input, convenient for pushback and tests
func RuneInput(r rune) Input {
	return Input{Kind: InputRune, Rune: r}
}

// KeyInput builds a derived-key input
func KeyInput(k Key) Input {
	return Input{Kind: InputKey, Key: k}
}

// ResizeInput builds a resize input with the given dimensions
func ResizeInput(rows, cols int) Input {
	return Input{Kind: InputResize, Rows: rows, Cols: cols}
}
