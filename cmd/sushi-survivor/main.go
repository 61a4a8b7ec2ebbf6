package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mkotake/sushi-survivor/audio"
	"github.com/mkotake/sushi-survivor/config"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/engine"
	"github.com/mkotake/sushi-survivor/parameter"
	"github.com/mkotake/sushi-survivor/render"
)

var (
	balanceFlag = flag.String("balance", "", "Path to a YAML balance file (overrides SUSHI_BALANCE)")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	seedFlag    = flag.Int64("seed", 0, "Fix the random seed for reproducible runs")
)

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before printing anything,
	// otherwise the trace lands on a raw-mode screen.
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nsushi-survivor crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	envCfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read environment: %v\n", err)
		os.Exit(1)
	}
	balancePath := envCfg.BalancePath
	if *balanceFlag != "" {
		balancePath = *balanceFlag
	}
	seed := envCfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	muted := envCfg.Mute || *muteFlag

	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load balance: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	width, height := screen.Size()
	// Row 0 is the HUD; the board is everything below it.
	bounds := core.Rect{
		Min: core.Point{X: 0, Y: 1},
		Max: core.Point{X: width, Y: height},
	}

	g, err := engine.NewGame(balance, seed, bounds, engine.NewMonotonicTimeProvider())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build game: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(muted)
	if err := sound.Initialize(); err != nil {
		// The game is playable without audio.
		sound.SetMuted(true)
	}
	defer sound.Cleanup()
	g.Router().Register(audio.NewHandler(sound))

	renderer := render.NewRenderer(screen)
	g.Router().Register(renderer)

	run(g, screen, renderer)
}

// run is the main loop: input events arrive on a channel from a
// polling goroutine; ticks and draws happen here at a fixed cadence.
func run(g *engine.Game, screen tcell.Screen, renderer *render.Renderer) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.GameTickInterval)
	defer ticker.Stop()
	frame := time.NewTicker(parameter.RenderInterval)
	defer frame.Stop()

	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			if handleInput(g, renderer, ev) {
				return
			}
		case <-ticker.C:
			g.Tick()
		case <-frame.C:
			renderer.Draw(g)
		}
	}
}

// handleInput applies one terminal event; true means quit.
func handleInput(g *engine.Game, renderer *render.Renderer, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape {
		return true
	}

	if renderer.HasDialog() {
		return dialogInput(g, renderer, key)
	}

	switch key.Key() {
	case tcell.KeyLeft:
		g.World().SetMoveDirection(-1, 0)
		return false
	case tcell.KeyRight:
		g.World().SetMoveDirection(1, 0)
		return false
	case tcell.KeyUp:
		g.World().SetMoveDirection(0, -1)
		return false
	case tcell.KeyDown:
		g.World().SetMoveDirection(0, 1)
		return false
	}

	switch key.Rune() {
	case 'q', 'Q':
		return true
	case 'n', 'N':
		// Ignore mid-transition restarts; see session.StartNewSession.
		_ = g.StartSession()
	case 'p', 'P':
		g.TogglePause()
	case 'h':
		g.World().SetMoveDirection(-1, 0)
	case 'l':
		g.World().SetMoveDirection(1, 0)
	case 'k':
		g.World().SetMoveDirection(0, -1)
	case 'j':
		g.World().SetMoveDirection(0, 1)
	case ' ':
		g.World().Dash()
	case 's', 'S':
		g.World().SetMoveDirection(0, 0)
	}
	return false
}

// dialogInput drives the day-end bonus choice.
func dialogInput(g *engine.Game, renderer *render.Renderer, key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyUp:
		renderer.MoveSelection(-1)
		return false
	case tcell.KeyDown:
		renderer.MoveSelection(1)
		return false
	case tcell.KeyEnter:
		choose(g, renderer.Selected())
		return false
	}

	switch r := key.Rune(); r {
	case '1', '2', '3':
		choose(g, int(r-'1'))
	case 'k':
		renderer.MoveSelection(-1)
	case 'j':
		renderer.MoveSelection(1)
	case 'x', 'X':
		choose(g, -1) // decline
	}
	return false
}

func choose(g *engine.Game, index int) {
	// Digits past the option count are rejected by the machine; the
	// dialog stays up so the player can pick again.
	_ = g.ChooseBonus(index)
}
