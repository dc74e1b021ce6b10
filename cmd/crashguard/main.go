package main

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/easyscreen"
)

func main() {
	// The session is scoped to the function: the terminal is restored
	// before anything below prints, even though the function panics.
	_, err := easyscreen.WithScreen(func(screen *easyscreen.Screen) struct{} {
		screen.SetCursorVisibility(easyscreen.CursorInvisible)
		screen.SetEcho(false)
		screen.Print("Hello world.")
		screen.Refresh()
		screen.GetInput()
		panic("oh no")
	})

	var perr *easyscreen.PanicError
	switch {
	case err == nil:
		fmt.Println("Finished without incident.")
	case errors.As(err, &perr) && perr.HasMessage:
		fmt.Println("Error Occurred:", perr.Message)
	default:
		fmt.Println("There was an error, but no error message.")
	}
}
