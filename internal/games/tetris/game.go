package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game adapts the engine to the platform's registry.Game interface. It owns
// every clock duty the engine refuses: gravity cadence, evaluating the lock
// deadline against wall-clock time, and the transient line-clear flash.
type Game struct {
	eng *Engine

	tick     uint64
	tickRate int
	seed     int64

	gravityTicker int

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Line-clear flash animation
	flashRows  []int
	flashTicks int
	levelTicks int // level-up banner countdown

	mapOffsetX int
	mapOffsetY int
	hudHeight  int
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created (same pattern as the other platform hooks).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next created game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.gravityTicker = 0
	g.paused = false
	g.flashRows = nil
	g.flashTicks = 0
	g.levelTicks = 0

	ecfg := engineConfig()
	eng, err := NewEngine(ecfg, g.seed)
	if err != nil {
		// A file-supplied config failed validation; fall back to the
		// built-in rule set rather than refusing to start.
		eng, _ = NewEngine(DefaultEngineConfig(), g.seed)
	}
	g.eng = eng

	g.layout()
}

// engineConfig builds the engine rule set from the YAML config, the selected
// difficulty preset, and the selected start level.
func engineConfig() Config {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&tc, config.DifficultyPreset(difficultyPreset))

	return Config{
		Width:           tc.Board.Width,
		Height:          tc.Board.Height,
		FallInterval:    time.Duration(tc.Timing.InitialFallMs) * time.Millisecond,
		MinFallInterval: time.Duration(tc.Timing.MinFallMs) * time.Millisecond,
		LockDelay:       time.Duration(tc.Timing.LockDelayMs) * time.Millisecond,
		MaxLockResets:   tc.Rules.MaxLockResets,
		LinesPerLevel:   tc.Rules.LinesPerLevel,
		StartLevel:      selectedStartLevel,
		LineScores:      tc.Scoring.LineClears,
		SoftDropBonus:   tc.Scoring.SoftDropBonus,
		HardDropBonus:   tc.Scoring.HardDropBonus,
	}
}

// layout positions the playfield and checks the screen fits.
func (g *Game) layout() {
	b := g.eng.Board()
	requiredW := b.Width*2 + 2 + sidePanelWidth
	requiredH := b.Height + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW-requiredW)/2 + 1
	g.mapOffsetY = g.hudHeight + 1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.eng != nil && g.eng.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     time.Now().UnixNano(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.eng.GameOver() {
		g.paused = !g.paused
	}

	if g.eng.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		// Hold the simulation while cleared rows flash.
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flashRows = nil
		}
		return core.StepResult{State: g.State()}
	}
	if g.levelTicks > 0 {
		g.levelTicks--
	}

	g.processInput(input)

	// The lock "timer" is a stored deadline; the engine never waits on it.
	if deadline, pending := g.eng.LockDeadline(); pending && !time.Now().Before(deadline) {
		g.eng.Lock()
	}

	// Gravity on the fall-interval cadence, re-derived each tick so a
	// level-up speeds the cadence up immediately.
	g.gravityTicker++
	if g.gravityTicker >= g.ticksPerFall() {
		g.gravityTicker = 0
		g.eng.GravityTick()
	}

	g.consumeEvents()

	return core.StepResult{State: g.State()}
}

// ticksPerFall converts the engine's fall interval to simulation ticks.
func (g *Game) ticksPerFall() int {
	n := int(g.eng.FallInterval() * time.Duration(g.tickRate) / time.Second)
	return max(1, n)
}

// processInput forwards triggered actions as engine commands. Rejected
// commands are silent no-ops inside the engine, so nothing is pre-validated.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if input.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if input.Has(core.ActionSoftDrop) {
		g.eng.SoftDrop()
	}
	if input.Has(core.ActionHardDrop) {
		g.eng.HardDrop()
	}
	if input.Has(core.ActionHold) {
		g.eng.Hold()
	}
	g.consumeEvents()
}

// consumeEvents turns snapshot events into transient animations.
func (g *Game) consumeEvents() {
	if rows := g.eng.LastCleared(); len(rows) > 0 {
		g.flashRows = rows
		g.flashTicks = g.tickRate / 5
		if g.eng.LeveledUp() {
			g.levelTicks = g.tickRate
		}
		g.eng.ClearEvents()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		Level:    g.eng.Level(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused,
	}
}

const sidePanelWidth = 16

// cellColors maps piece tags to terminal colors.
var cellColors = map[CellType]core.Color{
	CellI: core.ColorBrightCyan,
	CellO: core.ColorBrightYellow,
	CellT: core.ColorBrightMagenta,
	CellS: core.ColorBrightGreen,
	CellZ: core.ColorBrightRed,
	CellJ: core.ColorBrightBlue,
	CellL: core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderGhost(dst)
	if !g.eng.GameOver() {
		g.renderPiece(dst, g.eng.Current(), g.eng.Current().X, g.eng.Current().Y, '█')
	}
	g.renderSidePanel(dst)

	switch {
	case g.eng.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.eng.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.levelTicks > 0:
		dst.DrawTextColored(g.mapOffsetX, g.mapOffsetY-1, fmt.Sprintf(" Level %d! ", g.eng.Level()), core.ColorBrightYellow)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Level: %d  Lines: %d", g.eng.Score(), g.eng.Level(), g.eng.Lines())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame and the locked cells, two runes per cell.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.eng.Board()
	frame := core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, b.Width*2+2, b.Height+2)
	dst.DrawBox(frame)

	flash := make(map[int]bool, len(g.flashRows))
	for _, y := range g.flashRows {
		flash[y] = true
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sx := g.mapOffsetX + x*2
			sy := g.mapOffsetY + y
			switch {
			case flash[y]:
				dst.SetCell(sx, sy, '▒', core.ColorBrightWhite)
				dst.SetCell(sx+1, sy, '▒', core.ColorBrightWhite)
			case b.Cells[y][x] != CellEmpty:
				c := cellColors[b.Cells[y][x]]
				dst.SetCell(sx, sy, '█', c)
				dst.SetCell(sx+1, sy, '█', c)
			}
		}
	}
}

// renderGhost draws the hard-drop landing position of the current piece.
func (g *Game) renderGhost(dst *core.Screen) {
	if g.eng.GameOver() {
		return
	}
	p := g.eng.Current()
	ghostY := g.eng.GhostY()
	if ghostY == p.Y {
		return
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !p.Occupied(row, col) {
				continue
			}
			y := ghostY + row
			if y < 0 {
				continue
			}
			sx := g.mapOffsetX + (p.X+col)*2
			sy := g.mapOffsetY + y
			dst.SetCell(sx, sy, '░', core.ColorGray)
			dst.SetCell(sx+1, sy, '░', core.ColorGray)
		}
	}
}

// renderPiece draws a piece's occupied cells in board space.
func (g *Game) renderPiece(dst *core.Screen, p Piece, px, py int, r rune) {
	c := cellColors[p.Cell]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !p.Occupied(row, col) {
				continue
			}
			y := py + row
			if y < 0 {
				continue // hidden spawn rows
			}
			sx := g.mapOffsetX + (px+col)*2
			sy := g.mapOffsetY + y
			dst.SetCell(sx, sy, r, c)
			dst.SetCell(sx+1, sy, r, c)
		}
	}
}

// renderSidePanel draws the next/held previews and session stats.
func (g *Game) renderSidePanel(dst *core.Screen) {
	b := g.eng.Board()
	px := g.mapOffsetX + b.Width*2 + 2
	py := g.mapOffsetY - 1

	dst.DrawText(px, py, "Next")
	g.renderPreview(dst, g.eng.Next(), px, py+1)

	dst.DrawText(px, py+5, "Hold")
	if held, ok := g.eng.Held(); ok {
		g.renderPreview(dst, held, px, py+6)
	} else {
		dst.DrawTextColored(px, py+6, "(empty)", core.ColorGray)
	}
	if !g.eng.HoldAvailable() {
		dst.DrawTextColored(px+5, py+5, "used", core.ColorGray)
	}

	dst.DrawText(px, py+11, fmt.Sprintf("Score %d", g.eng.Score()))
	dst.DrawText(px, py+12, fmt.Sprintf("Level %d", g.eng.Level()))
	dst.DrawText(px, py+13, fmt.Sprintf("Lines %d", g.eng.Lines()))
}

// renderPreview draws a piece mask in panel space, one rune per cell.
func (g *Game) renderPreview(dst *core.Screen, p Piece, px, py int) {
	c := cellColors[p.Cell]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if p.Occupied(row, col) {
				dst.SetCell(px+col*2, py+row, '█', c)
				dst.SetCell(px+col*2+1, py+row, '█', c)
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
