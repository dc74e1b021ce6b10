package easyscreen

// Color is one of the eight classic terminal colors.
// The set is closed: every value maps to a palette index 0-7.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// colorCount is the size of the classic palette
const colorCount = 8

// AllColors lists every Color in palette order
var AllColors = [colorCount]Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}

var colorNames = [colorCount]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
}

// String returns the color name
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(?)"
}

// index returns the palette index 0-7
func (c Color) index() int16 {
	return int16(c) & 0x7
}

// ColorPair identifies a registered foreground/background combination.
// Valid pairs occupy 1-64; 0 names the provider's built-in default pair
// and is never produced by NewColorPair.
type ColorPair int16

// NewColorPair returns the identity value for a foreground/background
// combination. The mapping is injective over all 64 combinations:
//
//	pair = 1 + 8*fg + bg
func NewColorPair(fg, bg Color) ColorPair {
	return ColorPair(1 + 8*fg.index() + bg.index())
}

// DefaultColorPair is white on black. This is a registered pair in its own
// right, not the provider's pair 0, even though both render identically on
// most terminals.
func DefaultColorPair() ColorPair {
	return NewColorPair(White, Black)
}

// colors recovers the foreground/background combination from a pair identity
func (p ColorPair) colors() (fg, bg Color) {
	v := int16(p) - 1
	return Color(v / 8), Color(v % 8)
}
