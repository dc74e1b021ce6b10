// Package acs exposes the classic alternate character set: box-drawing
// corners, lines, tees, and symbol glyphs under their traditional
// names. The values are tcell's rune constants, which degrade to ASCII
// approximations on terminals that cannot display them.
package acs

import "github.com/gdamore/tcell/v2"

// Box drawing
const (
	ULCorner = tcell.RuneULCorner
	URCorner = tcell.RuneURCorner
	LLCorner = tcell.RuneLLCorner
	LRCorner = tcell.RuneLRCorner
	HLine    = tcell.RuneHLine
	VLine    = tcell.RuneVLine
	Plus     = tcell.RunePlus
	TTee     = tcell.RuneTTee
	BTee     = tcell.RuneBTee
	LTee     = tcell.RuneLTee
	RTee     = tcell.RuneRTee
)

// Arrows
const (
	UArrow = tcell.RuneUArrow
	DArrow = tcell.RuneDArrow
	LArrow = tcell.RuneLArrow
	RArrow = tcell.RuneRArrow
)

// Blocks and shading
const (
	Block   = tcell.RuneBlock
	CkBoard = tcell.RuneCkBoard
	Board   = tcell.RuneBoard
	Lantern = tcell.RuneLantern
)

// Scan lines
const (
	S1 = tcell.RuneS1
	S3 = tcell.RuneS3
	S7 = tcell.RuneS7
	S9 = tcell.RuneS9
)

// Symbols
const (
	Diamond  = tcell.RuneDiamond
	Degree   = tcell.RuneDegree
	PlMinus  = tcell.RunePlMinus
	Bullet   = tcell.RuneBullet
	LEqual   = tcell.RuneLEqual
	GEqual   = tcell.RuneGEqual
	NEqual   = tcell.RuneNEqual
	Pi       = tcell.RunePi
	Sterling = tcell.RuneSterling
)

// Historic letter-coded aliases. Each letter names a side of the cell
// (top, right, bottom, left) as s (line) or b (blank): BSSB has lines
// right and bottom, the upper-left corner.
const (
	BSSB = ULCorner
	BBSS = URCorner
	SSBB = LLCorner
	SBBS = LRCorner
	SBSS = RTee
	SSSB = LTee
	SSBS = BTee
	BSSS = TTee
	BSBS = HLine
	SBSB = VLine
	SSSS = Plus
)
