package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/easyscreen"
)

func main() {
	screen, err := easyscreen.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Close()

	screen.SetCursorVisibility(easyscreen.CursorInvisible)
	screen.SetEcho(false)
	screen.SetKeypad(true)

	rows, cols := screen.RowColCount()

	// A message using rc coordinates
	screen.MoveRC(0, 0)
	screen.Print("Hello from RC 0,0.")

	// The same axis pair counted from the bottom-left instead
	screen.MoveXY(1, 1)
	screen.Print("Hello from XY 1,1.")

	// Upper right corner has a '+'
	screen.MoveRC(0, cols-1)
	screen.PrintChar('+')

	// Bottom right corner has a '-'; in xy coordinates the column
	// count drives the first argument
	screen.MoveXY(cols-1, 0)
	screen.PrintChar('-')

	// Middle of the screen (ish) has a '*'
	screen.MoveXY(cols/2, rows/2)
	screen.PrintChar('*')

	screen.Refresh()
	screen.GetInput()
}
