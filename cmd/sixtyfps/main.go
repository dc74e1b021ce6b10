package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/easyscreen"
)

const frameTarget = time.Second / 60

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
	screen.SetInputTimeout(easyscreen.Immediate)
	screen.SetScrolling(true)

	_, cols := screen.RowColCount()
	position := 5

	for {
		top := time.Now()

		// Gather any pending input
		for {
			in, ok := screen.GetInput()
			if !ok {
				break
			}
			switch {
			case in.Kind == easyscreen.InputInterrupt:
				return
			case in.Kind == easyscreen.InputRune && (in.Rune == 'q' || in.Rune == 0x1b):
				return
			case in.Kind == easyscreen.InputKey && in.Key == easyscreen.KeyLeft:
				if position > 0 {
					position--
				}
			case in.Kind == easyscreen.InputKey && in.Key == easyscreen.KeyRight:
				if position < cols-1 {
					position++
				}
			}
		}

		bar := strings.Repeat("#", position)

		// Sleep out the rest of the frame. This overshoots slightly
		// because the draw below is not accounted for, but curses
		// animation does not demand precision.
		if remaining := frameTarget - time.Since(top); remaining > 0 {
			time.Sleep(remaining)
		}

		screen.Print("\n")
		screen.Print(bar)
		screen.Refresh()
	}
}
