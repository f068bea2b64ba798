package pacman

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/ghost"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/maze"
)

// cellWidth is the number of terminal columns per maze tile. Terminal cells
// are roughly twice as tall as wide.
const cellWidth = 2

// frightFlash is how long before a fright ends the ghosts start flashing.
const frightFlash = 2 * time.Second

var pacmanGlyphs = map[maze.Direction]string{
	maze.DirRight: "ᗧ",
	maze.DirLeft:  "ᗤ",
	maze.DirUp:    "ᗢ",
	maze.DirDown:  "ᗜ",
}

var ghostColors = [ghost.PersonaCount]core.Color{
	ghost.Blinky: core.ColorBrightRed,
	ghost.Pinky:  core.ColorBrightMagenta,
	ghost.Inky:   core.ColorBrightCyan,
	ghost.Clyde:  core.ColorOrange,
}

var fruitGlyphs = map[maze.FruitKind]struct {
	glyph string
	color core.Color
}{
	maze.Cherry:     {"ç", core.ColorRed},
	maze.Strawberry: {"ş", core.ColorBrightRed},
	maze.Orange:     {"ö", core.ColorOrange},
	maze.Apple:      {"ä", core.ColorRed},
	maze.Melon:      {"m", core.ColorGreen},
	maze.Galaxian:   {"¥", core.ColorYellow},
	maze.Bell:       {"ß", core.ColorBrightYellow},
	maze.Key:        {"k", core.ColorBrightCyan},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPacman(dst)

	// Draw overlays
	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level.Number()), fmt.Sprintf("Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	sched := g.ghosts.Scheduler()
	mode := sched.Mode().String()
	if left, ok := sched.Remaining(g.now); ok && sched.Mode() != ghost.ModeFrightened {
		mode = fmt.Sprintf("%s %ds", mode, int(left.Seconds()))
	} else if sched.Mode() == ghost.ModeFrightened {
		mode = fmt.Sprintf("%s %ds", mode, int(sched.FrightenedRemaining(g.now).Seconds()))
	}

	hud := fmt.Sprintf(" Maze Chase - Score: %d  Level: %d  Lives: %d  Mode: %s",
		g.score, g.level.Number(), g.lives, mode)
	dst.DrawText(0, 0, hud)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and edibles.
func (g *Game) renderMaze(dst *core.Screen) {
	pelletsOn := g.pelletsVisible()
	for y := range maze.Height {
		for x := range maze.Width {
			sx, sy := g.screenPos(maze.Point{X: x, Y: y})
			if g.grid.IsWall(x, y) {
				dst.DrawTextColor(sx, sy, "██", core.ColorBlue)
				continue
			}
			o := g.grid.Occupant(x, y)
			switch o.Kind {
			case maze.Dot:
				dst.DrawTextColor(sx, sy, "· ", core.ColorWhite)
			case maze.PowerPellet:
				if pelletsOn {
					dst.DrawTextColor(sx, sy, "● ", core.ColorBrightWhite)
				}
			case maze.Fruit:
				f := fruitGlyphs[o.Fruit]
				dst.DrawTextColor(sx, sy, f.glyph, f.color)
			}
		}
	}
}

// pelletsVisible implements the pellet blink on simulated time.
func (g *Game) pelletsVisible() bool {
	period := time.Duration(g.cfg.Gameplay.PelletBlinkMs) * time.Millisecond
	if period <= 0 {
		return true
	}
	return (g.now/period)%2 == 0
}

func (g *Game) renderGhosts(dst *core.Screen) {
	sched := g.ghosts.Scheduler()
	flashing := sched.FrightenedRemaining(g.now) < frightFlash && g.pelletsVisible()
	for _, gh := range g.ghosts.Ghosts() {
		color := ghostColors[gh.Persona()]
		if gh.Mode() == ghost.ModeFrightened {
			color = core.ColorBrightBlue
			if flashing {
				color = core.ColorBrightWhite
			}
		}
		sx, sy := g.screenPos(gh.Tile())
		dst.DrawTextColor(sx, sy, "ᗣ ", color)
	}
}

func (g *Game) renderPacman(dst *core.Screen) {
	glyph, ok := pacmanGlyphs[g.pac.Direction()]
	if !ok {
		glyph = "ᗧ"
	}
	sx, sy := g.screenPos(g.pac.Tile())
	dst.DrawTextColor(sx, sy, glyph+" ", core.ColorBrightYellow)
}

func (g *Game) screenPos(p maze.Point) (int, int) {
	return g.mapOffsetX + p.X*cellWidth, g.mapOffsetY + p.Y
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := max(runewidth.StringWidth(line1), runewidth.StringWidth(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
