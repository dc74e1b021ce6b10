package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/easyscreen"
	"github.com/lixenwraith/easyscreen/acs"
)

// Shows the alternate character set. Each glyph is inserted at the
// line start, pushing the previous ones right, so every row reads in
// reverse insertion order.
func main() {
	screen, err := easyscreen.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Close()

	screen.SetEcho(false)
	screen.SetColorPair(easyscreen.NewColorPair(easyscreen.Green, easyscreen.Black))

	screen.MoveRC(0, 0)
	for _, r := range []rune{
		acs.LLCorner, acs.LRCorner, acs.ULCorner, acs.URCorner,
		acs.BTee, acs.HLine, acs.LTee, acs.Plus, acs.RTee, acs.TTee,
		acs.VLine, acs.S1, acs.S9,
	} {
		screen.InsertChar(r)
	}

	screen.MoveRC(1, 0)
	for _, r := range []rune{
		acs.Bullet, acs.CkBoard, acs.Degree, acs.Diamond, acs.PlMinus,
		acs.Block, acs.Board, acs.DArrow, acs.Lantern, acs.LArrow,
		acs.RArrow, acs.UArrow, acs.S3,
	} {
		screen.InsertChar(r)
	}

	screen.MoveRC(2, 0)
	for _, r := range []rune{
		acs.S7, acs.GEqual, acs.LEqual, acs.NEqual, acs.Pi, acs.Sterling,
		acs.BBSS, acs.BSSB, acs.SBBS, acs.SBSS, acs.SSBB, acs.SSBS,
		acs.SSSB, acs.BSBS, acs.BSSS, acs.SBSB, acs.SSSS,
	} {
		screen.InsertChar(r)
	}

	screen.Refresh()
	screen.GetInput()
}
