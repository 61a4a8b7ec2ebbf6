package render

import "github.com/gdamore/tcell/v2"

var (
	styleDefault = tcell.StyleDefault.
			Background(tcell.NewRGBColor(24, 24, 32)).
			Foreground(tcell.ColorWhite)

	styleHUD       = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTimerLow  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleRoad      = styleDefault.Foreground(tcell.NewRGBColor(90, 90, 100))
	stylePlayer    = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDashing   = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStunned   = styleDefault.Foreground(tcell.ColorRed)
	styleSushi     = styleDefault.Foreground(tcell.ColorGreen)
	styleRareSushi = styleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleWasabi    = styleDefault.Foreground(tcell.ColorLime)
	styleCar       = styleDefault.Foreground(tcell.ColorSilver)
	styleRareCar   = styleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleWreck     = styleDefault.Foreground(tcell.ColorOrange)
	styleBanner    = styleDefault.Foreground(tcell.ColorYellow).Bold(true).Blink(true)
	styleDialog    = styleDefault.Background(tcell.NewRGBColor(40, 40, 56))
	styleDialogHi  = styleDialog.Foreground(tcell.ColorYellow).Bold(true)
	styleOverlay   = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Entity glyphs.
const (
	glyphPlayer    = 'B'
	glyphSushi     = 'o'
	glyphRareSushi = '@'
	glyphWasabi    = 'w'
	glyphCar       = 'C'
	glyphRareCar   = 'K'
	glyphWreck     = '#'
	glyphRoad      = '='
)
