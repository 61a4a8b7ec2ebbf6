// Package render draws the board, HUD and dialogs onto a tcell
// screen. It is a pure consumer: it reads snapshots and routed
// events, and never mutates game state.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mkotake/sushi-survivor/bonus"
	"github.com/mkotake/sushi-survivor/core"
	"github.com/mkotake/sushi-survivor/engine"
	"github.com/mkotake/sushi-survivor/event"
	"github.com/mkotake/sushi-survivor/game"
	"github.com/mkotake/sushi-survivor/session"
)

// bannerFrames is how many draw frames the "one more" banner lingers.
const bannerFrames = 45

// Renderer draws one frame per Draw call and tracks the small amount
// of transient presentation state (banner, pending bonus options).
type Renderer struct {
	screen tcell.Screen

	bannerLeft int
	options    []bonus.Definition
	selected   int
}

// NewRenderer wraps an initialized tcell screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// EventTypes implements event.Handler.
func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventOneMore,
		event.EventBonusChoiceRequired,
		event.EventRoundStart,
	}
}

// HandleEvent tracks presentation state carried by events.
func (r *Renderer) HandleEvent(e event.GameEvent) {
	switch e.Type {
	case event.EventOneMore:
		r.bannerLeft = bannerFrames
	case event.EventBonusChoiceRequired:
		if p, ok := e.Payload.(event.BonusChoicePayload); ok {
			r.options = p.Options
			r.selected = 0
		}
	case event.EventRoundStart:
		r.options = nil
		r.bannerLeft = 0
	}
}

// MoveSelection shifts the bonus dialog cursor.
func (r *Renderer) MoveSelection(delta int) {
	if len(r.options) == 0 {
		return
	}
	r.selected = (r.selected + delta + len(r.options)) % len(r.options)
}

// Selected returns the highlighted bonus option index.
func (r *Renderer) Selected() int { return r.selected }

// HasDialog reports whether the bonus dialog is up.
func (r *Renderer) HasDialog() bool { return len(r.options) > 0 }

// Draw renders one frame.
func (r *Renderer) Draw(g *engine.Game) {
	r.screen.Fill(' ', styleDefault)

	snap := g.Machine().Snapshot()
	r.drawHUD(g, snap)
	r.drawBoard(g)

	switch snap.Phase {
	case session.PhaseRoundTransition:
		r.drawCentered(g.Bounds(), "Round complete!", styleBanner)
	case session.PhaseAwaitingBonus:
		r.drawBonusDialog(g)
	case session.PhaseGameOver:
		r.drawResult(g, snap)
	case session.PhaseIdle:
		r.drawCentered(g.Bounds(), "Press N to start", styleOverlay)
	}

	if r.bannerLeft > 0 && snap.Phase == session.PhaseRoundActive {
		r.bannerLeft--
		r.drawCentered(g.Bounds(), "One more!", styleBanner)
	}
	if snap.Paused {
		r.drawCentered(g.Bounds(), "Paused", styleOverlay)
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(g *engine.Game, snap session.Snapshot) {
	hud := fmt.Sprintf("Day %d  %s  Round %d  Sushi %d/%d  Total %d",
		snap.Day, snap.TimeOfDay, snap.Round, snap.RoundScore, snap.Target, snap.TotalScore)
	r.drawText(0, 0, hud, styleHUD)

	timer := fmt.Sprintf("Time %5.1f", maxf(snap.Remaining, 0))
	style := styleHUD
	if snap.Remaining < 10 {
		style = styleTimerLow
	}
	r.drawText(g.Bounds().Max.X-len(timer), 0, timer, style)
}

func (r *Renderer) drawBoard(g *engine.Game) {
	bounds := g.Bounds()
	road := g.RoadRow()

	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r.screen.SetContent(x, road, glyphRoad, nil, styleRoad)
	}

	for _, s := range g.World().Sushi() {
		pos := s.Pos.Cell()
		glyph, style := sushiGlyph(s.Kind)
		r.screen.SetContent(pos.X, pos.Y, glyph, nil, style)
	}

	for _, c := range g.World().Cars() {
		pos := c.Pos.Cell()
		glyph, style := carGlyph(c)
		r.screen.SetContent(pos.X, pos.Y, glyph, nil, style)
	}

	p := g.World().PlayerPos()
	style := stylePlayer
	switch g.World().PlayerState() {
	case game.PlayerDashing:
		style = styleDashing
	case game.PlayerStunned:
		style = styleStunned
	}
	r.screen.SetContent(p.X, p.Y, glyphPlayer, nil, style)
}

func sushiGlyph(kind core.SushiKind) (rune, tcell.Style) {
	switch kind {
	case core.SushiRare:
		return glyphRareSushi, styleRareSushi
	case core.Wasabi:
		return glyphWasabi, styleWasabi
	default:
		return glyphSushi, styleSushi
	}
}

func carGlyph(c *game.Car) (rune, tcell.Style) {
	if c.Exploded {
		return glyphWreck, styleWreck
	}
	if c.Kind == core.CarRare {
		return glyphRareCar, styleRareCar
	}
	return glyphCar, styleCar
}

func (r *Renderer) drawBonusDialog(g *engine.Game) {
	bounds := g.Bounds()
	width := 44
	height := len(r.options)*2 + 4
	x0 := bounds.Min.X + (bounds.Width()-width)/2
	y0 := bounds.Min.Y + (bounds.Height()-height)/2

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleDialog)
		}
	}
	r.drawText(x0+2, y0+1, "Day complete! Choose an upgrade:", styleDialogHi)

	for i, def := range r.options {
		style := styleDialog
		marker := "  "
		if i == r.selected {
			style = styleDialogHi
			marker = "> "
		}
		desc := g.Bonuses().Describe(def)
		line := fmt.Sprintf("%s%d. %s  %s", marker, i+1, def.Name, describeText(desc))
		r.drawText(x0+2, y0+3+i*2, line, style)
	}
}

func describeText(d bonus.Description) string {
	if d.Max {
		return fmt.Sprintf("%.4g (MAX)", d.Current)
	}
	return fmt.Sprintf("%.4g -> %.4g", d.Current, d.Next)
}

func (r *Renderer) drawResult(g *engine.Game, snap session.Snapshot) {
	bounds := g.Bounds()
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score: %d", snap.TotalScore),
		fmt.Sprintf("Survived to day %d, round %d", snap.Day, snap.Round),
		"",
		"N: new run   Q: quit",
	}
	y := bounds.Min.Y + bounds.Height()/2 - len(lines)/2
	for i, line := range lines {
		x := bounds.Min.X + (bounds.Width()-len(line))/2
		r.drawText(x, y+i, line, styleOverlay)
	}
}

func (r *Renderer) drawCentered(bounds core.Rect, text string, style tcell.Style) {
	x := bounds.Min.X + (bounds.Width()-len(text))/2
	y := bounds.Min.Y + 2
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
