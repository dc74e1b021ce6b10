package easyscreen

import "testing"

func TestNewColorPairIdentity(t *testing.T) {
	// Every combination gets a distinct identity in 1-64
	seen := make(map[ColorPair][2]Color)

	for _, fg := range AllColors {
		for _, bg := range AllColors {
			id := NewColorPair(fg, bg)
			if id < 1 || id > 64 {
				t.Errorf("Expected pair for (%v, %v) in 1-64, got %d", fg, bg, id)
			}
			if prev, dup := seen[id]; dup {
				t.Errorf("Expected distinct pair ids, got %d for both (%v, %v) and (%v, %v)",
					id, prev[0], prev[1], fg, bg)
			}
			seen[id] = [2]Color{fg, bg}
		}
	}

	if len(seen) != 64 {
		t.Errorf("Expected 64 distinct pairs, got %d", len(seen))
	}
}

func TestNewColorPairFormula(t *testing.T) {
	cases := []struct {
		fg, bg Color
		want   ColorPair
	}{
		{Black, Black, 1},
		{Black, White, 8},
		{Red, Green, 11},
		{White, Black, 57},
		{White, White, 64},
	}

	for _, c := range cases {
		if got := NewColorPair(c.fg, c.bg); got != c.want {
			t.Errorf("Expected NewColorPair(%v, %v) = %d, got %d", c.fg, c.bg, c.want, got)
		}
	}
}

func TestDefaultColorPair(t *testing.T) {
	def := DefaultColorPair()

	if def != NewColorPair(White, Black) {
		t.Errorf("Expected default pair to be white on black (%d), got %d",
			NewColorPair(White, Black), def)
	}

	// The default pair is a registered pair, never the provider's pair 0
	if def == 0 {
		t.Error("Expected default pair to be nonzero")
	}
}

func TestColorPairColors(t *testing.T) {
	// colors recovers the combination from any identity
	for _, fg := range AllColors {
		for _, bg := range AllColors {
			gotFg, gotBg := NewColorPair(fg, bg).colors()
			if gotFg != fg || gotBg != bg {
				t.Errorf("Expected (%v, %v) back from pair %d, got (%v, %v)",
					fg, bg, NewColorPair(fg, bg), gotFg, gotBg)
			}
		}
	}
}

func TestColorString(t *testing.T) {
	if Green.String() != "Green" {
		t.Errorf("Expected \"Green\", got %q", Green.String())
	}
	if Color(200).String() != "Color(?)" {
		t.Errorf("Expected placeholder name for out-of-range color, got %q", Color(200).String())
	}

	// AllColors follows palette order
	for i, c := range AllColors {
		if int(c) != i {
			t.Errorf("Expected AllColors[%d] to be palette index %d, got %v", i, i, c)
		}
	}
}
