package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/easyscreen"
	"github.com/lixenwraith/easyscreen/acs"
)

const (
	trailLength      = 8
	trailDecayMs     = 50
	errorBlinkMs     = 500
	cursorBlinkMs    = 500
	characterSpawnMs = 2000
	maxTargets       = 20
	frameTime        = 16 * time.Millisecond // ~60 FPS
)

type target struct {
	r        rune
	row, col int
	pair     easyscreen.ColorPair
}

type trail struct {
	row, col  int
	intensity float64
	timestamp time.Time
}

type game struct {
	screen     *easyscreen.Screen
	rows, cols int

	// Cursor state
	cursorRow, cursorCol int
	cursorVisible        bool
	cursorError          bool
	cursorErrorTime      time.Time
	cursorBlinkTime      time.Time

	// Trail effect
	trails []trail

	// Targets on screen
	targets   []target
	lastSpawn time.Time

	// Audio
	audioOn bool
}

func newGame(screen *easyscreen.Screen) *game {
	g := &game{
		screen:          screen,
		trails:          make([]trail, 0, trailLength*2),
		cursorVisible:   true,
		lastSpawn:       time.Now(),
		cursorBlinkTime: time.Now(),
	}
	g.rows, g.cols = screen.RowColCount()
	g.cursorRow = g.rows / 2
	g.cursorCol = g.cols / 2
	return g
}

func (g *game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioOn = true
	}
	return err
}

func (g *game) playHitSound() {
	if !g.audioOn {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)

	speaker.Play(beep.Take(duration, sine))
}

func (g *game) spawnTarget() target {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{}|;:,.<>?/")

	// Avoid spawning next to the cursor
	var row, col int
	for {
		row = rand.Intn(g.rows)
		col = rand.Intn(g.cols)
		if abs(col-g.cursorCol) > 5 || abs(row-g.cursorRow) > 3 {
			break
		}
	}

	r := chars[rand.Intn(len(chars))]

	// Color by character class
	var pair easyscreen.ColorPair
	switch {
	case r >= 'a' && r <= 'z':
		pair = easyscreen.NewColorPair(easyscreen.Green, easyscreen.Black)
	case r >= 'A' && r <= 'Z':
		pair = easyscreen.NewColorPair(easyscreen.Blue, easyscreen.Black)
	case r >= '0' && r <= '9':
		pair = easyscreen.NewColorPair(easyscreen.Yellow, easyscreen.Black)
	default:
		pair = easyscreen.NewColorPair(easyscreen.Magenta, easyscreen.Black)
	}

	return target{r: r, row: row, col: col, pair: pair}
}

func (g *game) addTrail(fromRow, fromCol, toRow, toCol int) {
	dRow := float64(toRow - fromRow)
	dCol := float64(toCol - fromCol)

	for i := 1; i <= trailLength; i++ {
		progress := float64(i) / float64(trailLength)
		g.trails = append(g.trails, trail{
			row:       fromRow + int(dRow*progress),
			col:       fromCol + int(dCol*progress),
			intensity: 1.0 - progress*0.8,
			timestamp: time.Now().Add(time.Duration(i) * trailDecayMs * time.Millisecond),
		})
	}
}

func (g *game) updateTrails() {
	now := time.Now()
	kept := make([]trail, 0, len(g.trails))

	for _, tr := range g.trails {
		elapsed := now.Sub(tr.timestamp).Seconds()
		if elapsed < 0 {
			// Trail point not yet lit
			kept = append(kept, tr)
		} else if elapsed < 0.5 {
			tr.intensity *= 1.0 - elapsed*2
			if tr.intensity > 0.05 {
				kept = append(kept, tr)
			}
		}
	}

	g.trails = kept
}

func (g *game) handleResize() {
	g.rows, g.cols = g.screen.RowColCount()

	if g.cursorRow >= g.rows {
		g.cursorRow = g.rows - 1
	}
	if g.cursorCol >= g.cols {
		g.cursorCol = g.cols - 1
	}

	// Drop targets that fell off the screen
	kept := make([]target, 0, len(g.targets))
	for _, t := range g.targets {
		if t.row < g.rows && t.col < g.cols {
			kept = append(kept, t)
		}
	}
	g.targets = kept
}

func trailGlyph(intensity float64) rune {
	switch {
	case intensity > 0.66:
		return acs.Block
	case intensity > 0.33:
		return acs.CkBoard
	default:
		return acs.Board
	}
}

func (g *game) draw() {
	g.screen.Clear()

	for _, t := range g.targets {
		g.screen.SetColorPair(t.pair)
		g.screen.MoveRC(t.row, t.col)
		g.screen.PrintChar(t.r)
	}

	g.screen.SetColorPair(easyscreen.NewColorPair(easyscreen.White, easyscreen.Black))
	for _, tr := range g.trails {
		if tr.row >= 0 && tr.row < g.rows && tr.col >= 0 && tr.col < g.cols {
			g.screen.MoveRC(tr.row, tr.col)
			g.screen.PrintChar(trailGlyph(tr.intensity))
		}
	}

	now := time.Now()

	if g.cursorError && now.Sub(g.cursorErrorTime).Milliseconds() > errorBlinkMs {
		g.cursorError = false
	}

	if now.Sub(g.cursorBlinkTime).Milliseconds() > cursorBlinkMs {
		g.cursorVisible = !g.cursorVisible
		g.cursorBlinkTime = now
	}

	if g.cursorVisible {
		pair := easyscreen.NewColorPair(easyscreen.White, easyscreen.Black)
		if g.cursorError {
			pair = easyscreen.NewColorPair(easyscreen.Red, easyscreen.Black)
		}
		g.screen.SetColorPair(pair)
		g.screen.SetBold(true)
		g.screen.MoveRC(g.cursorRow, g.cursorCol)
		g.screen.PrintChar(acs.Block)
		g.screen.SetBold(false)
	}

	g.screen.Refresh()
}

func (g *game) handleInput(in easyscreen.Input) bool {
	switch in.Kind {
	case easyscreen.InputInterrupt:
		return false

	case easyscreen.InputRune:
		if in.Rune == 0x1b || in.Rune == 'Q' {
			return false
		}

		// Jump the cursor to a matching target
		for i, t := range g.targets {
			if t.r == in.Rune {
				g.addTrail(g.cursorRow, g.cursorCol, t.row, t.col)
				g.cursorRow, g.cursorCol = t.row, t.col

				g.targets = append(g.targets[:i], g.targets[i+1:]...)
				g.playHitSound()

				g.cursorVisible = true
				g.cursorBlinkTime = time.Now()
				return true
			}
		}

		// Wrong key, blink red
		g.cursorError = true
		g.cursorErrorTime = time.Now()

	case easyscreen.InputMouse:
		// Clicking moves the cursor with a trail
		if in.Buttons&easyscreen.Button1 != 0 {
			g.addTrail(g.cursorRow, g.cursorCol, in.MouseRow, in.MouseCol)
			g.cursorRow, g.cursorCol = in.MouseRow, in.MouseCol
		}

	case easyscreen.InputResize:
		g.handleResize()
	}

	return true
}

func (g *game) run() {
	g.screen.SetInputTimeout(easyscreen.Immediate)

	for {
		top := time.Now()

		for {
			in, ok := g.screen.GetInput()
			if !ok {
				break
			}
			if !g.handleInput(in) {
				return
			}
		}

		if time.Since(g.lastSpawn).Milliseconds() > characterSpawnMs && len(g.targets) < maxTargets {
			g.targets = append(g.targets, g.spawnTarget())
			g.lastSpawn = time.Now()
		}

		g.updateTrails()
		g.draw()

		if remaining := frameTime - time.Since(top); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func main() {
	screen, err := easyscreen.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Close()

	screen.SetCursorVisibility(easyscreen.CursorInvisible)
	screen.SetEcho(false)
	screen.SetKeypad(true)
	screen.SetMouse(true)
	screen.SetTitle("keychase")

	g := newGame(screen)

	// Sound is optional; the game runs silent if audio setup fails
	g.initAudio()
	defer func() {
		if g.audioOn {
			speaker.Close()
		}
	}()

	g.run()
}
