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

	screen.SetColorPair(easyscreen.NewColorPair(easyscreen.Green, easyscreen.Black))

	// The cursor starts at row 0, col 0
	screen.Print("Hello world.")
	screen.Refresh()

	// Wait for one input so the message can be read before the
	// session ends
	screen.GetInput()
}
