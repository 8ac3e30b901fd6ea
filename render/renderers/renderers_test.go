package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/render"
	"github.com/lixenwraith/tabletennis/status"
	"github.com/lixenwraith/tabletennis/vmath"
)

const screenW, screenH = 80, 30

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(screenW, screenH)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < screenW; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	var sb strings.Builder
	for y := 0; y < screenH; y++ {
		sb.WriteString(rowText(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderSnapshot(t *testing.T, snap *game.Snapshot, ctx render.Context) tcell.SimulationScreen {
	t.Helper()
	screen := newScreen(t)
	o := render.NewOrchestrator(screen)
	RegisterDefaults(o)
	o.Render(snap, ctx)
	return screen
}

func playing(t *testing.T) *game.Match {
	t.Helper()
	m := game.NewMatch(game.DefaultOptions())
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return m
}

func TestRegisterDefaults(t *testing.T) {
	o := render.NewOrchestrator(newScreen(t))
	RegisterDefaults(o)
	if o.Count() != 7 {
		t.Errorf("Expected 7 renderers, got %d", o.Count())
	}
}

func TestBallAndPaddlesDrawn(t *testing.T) {
	m := playing(t)
	snap := m.Snapshot()
	screen := renderSnapshot(t, snap, render.Context{})
	p := render.NewProjection(screenW, screenH)

	b := snap.Ball.Position
	if r, _, _, _ := screen.GetContent(p.Col(b.X()), p.Row(b.Z())); r != 'o' {
		t.Errorf("Expected ball glyph 'o', got %q", r)
	}
	pp := snap.Player.Position
	if r, _, _, _ := screen.GetContent(p.Col(pp.X()), p.Row(pp.Z())); r != '▀' {
		t.Errorf("Expected player paddle at its row, got %q", r)
	}
	cp := snap.Computer.Position
	if r, _, _, _ := screen.GetContent(p.Col(cp.X()), p.Row(cp.Z())); r != '▀' {
		t.Errorf("Expected computer paddle at its row, got %q", r)
	}
}

func TestPaddleWidthScales(t *testing.T) {
	m := playing(t)
	snap := m.Snapshot()
	p := render.NewProjection(screenW, screenH)

	count := func(s *game.Snapshot) int {
		screen := renderSnapshot(t, s, render.Context{})
		return strings.Count(rowText(screen, p.Row(s.Player.Position.Z())), "▀")
	}
	base := count(snap)

	m.State().Player.WidthScale = 1.5
	wide := count(m.Snapshot())
	if wide <= base {
		t.Errorf("Expected extended paddle wider than %d cells, got %d", base, wide)
	}
}

func TestHUDShowsScoresAndBadges(t *testing.T) {
	m := playing(t)
	gs := m.State()
	gs.PlayerScore, gs.ComputerScore = 3, 7
	gs.DoublePointsActive = true
	gs.SetShield(true)

	screen := renderSnapshot(t, m.Snapshot(), render.Context{Muted: true})
	top := rowText(screen, 0)

	if !strings.Contains(top, ScoreLine(3, 7, 11)) {
		t.Errorf("Expected score line in %q", top)
	}
	for _, badge := range []string{"2x", "SHIELD", "MUTED"} {
		if !strings.Contains(top, badge) {
			t.Errorf("Expected badge %s in %q", badge, top)
		}
	}
}

func TestShieldLineDrawn(t *testing.T) {
	m := playing(t)
	m.State().SetShield(true)
	snap := m.Snapshot()
	screen := renderSnapshot(t, snap, render.Context{})
	p := render.NewProjection(screenW, screenH)

	if !strings.Contains(rowText(screen, p.Row(snap.ShieldZ)), "━") {
		t.Error("Expected shield line at shield row")
	}
}

func TestEntitiesDrawnWithGlyphs(t *testing.T) {
	m := playing(t)
	fx := m.Effects()
	fx.AddPowerUp(component.PowerUpShield, vmath.V3(1, 0.5, 2))
	fx.AddObstacle(component.ObstacleBouncePad, vmath.V3(-1, 0.5, -2))

	screen := renderSnapshot(t, m.Snapshot(), render.Context{})
	p := render.NewProjection(screenW, screenH)

	if r, _, _, _ := screen.GetContent(p.Col(1), p.Row(2)); r != 'H' {
		t.Errorf("Expected shield power-up 'H', got %q", r)
	}
	if r, _, _, _ := screen.GetContent(p.Col(-1), p.Row(-2)); r != 'j' {
		t.Errorf("Expected bounce pad 'j', got %q", r)
	}
}

func TestOverlayPrompts(t *testing.T) {
	m := game.NewMatch(game.DefaultOptions())
	idle := screenText(renderSnapshot(t, m.Snapshot(), render.Context{}))
	if !strings.Contains(idle, "SPACE to serve") {
		t.Error("Expected idle prompt")
	}

	m.Start()
	if text := screenText(renderSnapshot(t, m.Snapshot(), render.Context{})); strings.Contains(text, "SPACE") {
		t.Error("Expected no prompt during play")
	}

	m.Pause()
	if text := screenText(renderSnapshot(t, m.Snapshot(), render.Context{})); !strings.Contains(text, "PAUSED") {
		t.Error("Expected paused prompt")
	}
}

func TestOverlayWinner(t *testing.T) {
	m := playing(t)
	for i := 0; i < 11; i++ {
		m.ScorePoint(component.SidePlayer)
	}
	if m.Phase().String() != "gameOver" {
		t.Fatalf("Expected gameOver, got %s", m.Phase())
	}
	ctx := render.Context{Snapshot: m.Snapshot()}
	if !strings.Contains(OverlayText(ctx), "YOU WIN") {
		t.Errorf("Expected player win prompt, got %q", OverlayText(ctx))
	}
}

func TestStatsPanel(t *testing.T) {
	m := playing(t)
	reg := status.NewRegistry()
	reg.Ints.Get("paddle.hits").Store(4)

	hidden := screenText(renderSnapshot(t, m.Snapshot(), render.Context{Stats: reg.Entries()}))
	if strings.Contains(hidden, "paddle.hits") {
		t.Error("Expected stats hidden by default")
	}
	shown := screenText(renderSnapshot(t, m.Snapshot(), render.Context{Stats: reg.Entries(), ShowStats: true}))
	if !strings.Contains(shown, "paddle.hits 4") {
		t.Error("Expected stats panel to list paddle.hits 4")
	}
}

func TestGlyphLookups(t *testing.T) {
	if BallGlyph(2) != '●' || BallGlyph(0.5) != '∙' || BallGlyph(1) != 'o' {
		t.Error("Expected ball glyph by scale")
	}
	if PowerUpGlyph("nope") != '?' || ObstacleGlyph("nope") != '?' {
		t.Error("Expected '?' for unknown kinds")
	}
	for i := 0; i < component.PowerUpKindCount; i++ {
		if PowerUpGlyph(component.PowerUpKind(i).String()) == '?' {
			t.Errorf("Expected glyph for %s", component.PowerUpKind(i))
		}
	}
	for i := 0; i < component.ObstacleKindCount; i++ {
		if ObstacleGlyph(component.ObstacleKind(i).String()) == '?' {
			t.Errorf("Expected glyph for %s", component.ObstacleKind(i))
		}
	}
}
