package hop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mattress-hop/internal/core"
)

func renderText(r *Round, cols, rows int) (*core.Screen, string) {
	scr := core.NewScreen(cols, rows)
	r.Render(scr)
	return scr, scr.String()
}

func countColor(s *core.Screen, c core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == c {
				n++
			}
		}
	}
	return n
}

func TestRenderPhases(t *testing.T) {
	r, _ := newTestRound(t)

	_, out := renderText(r, 80, 24)
	if !strings.Contains(out, "M A T T R E S S   H O P") {
		t.Error("title screen should show the game name")
	}

	r.Start()
	r.world.Score = 40
	scr, out := renderText(r, 80, 24)
	if !strings.Contains(out, "Score: 40") {
		t.Error("running screen should show the score")
	}
	if countColor(scr, core.ColorSkin) == 0 {
		t.Error("character sprite not drawn")
	}
	if countColor(scr, core.ColorRed) == 0 {
		t.Error("beds not drawn")
	}

	knockOut(r)
	runUntilGameOver(t, r)
	_, out = renderText(r, 80, 24)
	for _, want := range []string{"Game Over", "Final score: 40", "Restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderRoomFurniture(t *testing.T) {
	r, _ := newTestRound(t, 0, 3)
	r.Start()
	scr, out := renderText(r, 80, 24)

	if !strings.ContainsRune(out, '☾') {
		t.Error("window moon not drawn")
	}
	for _, tc := range []struct {
		name  string
		color core.Color
	}{
		{"stars", core.ColorCyan},
		{"books", core.ColorGreen},
		{"lamp", core.ColorOrange},
		{"window", core.ColorBlue},
		{"clock face", core.ColorCream},
	} {
		if countColor(scr, tc.color) == 0 {
			t.Errorf("%s not drawn", tc.name)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	r, _ := newTestRound(t)
	_, out := renderText(r, 30, 8)
	if !strings.Contains(out, "Window too small") {
		t.Error("expected size warning")
	}
}

func TestFadedBedIsHidden(t *testing.T) {
	r, _ := newTestRound(t, 0, 0)
	r.Start()
	before, _ := renderText(r, 80, 24)
	redBefore := countColor(before, core.ColorRed)

	r.world.Beds.beds[5].Active = false
	r.world.Beds.beds[5].Alpha = 0.4
	if !r.Snapshot().Beds[5].Visible() {
		t.Error("fading bed should stay visible")
	}
	r.world.Beds.beds[5].Alpha = 0
	if r.Snapshot().Beds[5].Visible() {
		t.Error("fully faded inactive bed should not be visible")
	}
	after, _ := renderText(r, 80, 24)

	if got := countColor(after, core.ColorRed); got >= redBefore {
		t.Errorf("red cells = %d, want fewer than %d after bed fades out", got, redBefore)
	}
}

func TestClickCellRestart(t *testing.T) {
	r, _ := newTestRound(t)
	r.Start()

	vp := newViewport(80, 24, 1280, 720)
	btn := vp.buttonCells(r.restartButton())
	if btn.W < buttonMinCols || btn.H < buttonMinRows {
		t.Fatalf("button cells %+v too small for the label", btn)
	}

	if r.ClickCell(btn.X+1, btn.Y+1, 80, 24) {
		t.Error("click should be ignored while running")
	}

	knockOut(r)
	runUntilGameOver(t, r)

	scr, _ := renderText(r, 80, 24)
	if scr.Get(btn.X, btn.Y) != '┌' {
		t.Errorf("button box not drawn at %d,%d", btn.X, btn.Y)
	}

	if r.ClickCell(0, 0, 80, 24) {
		t.Error("click outside the button should not restart")
	}
	if !r.ClickCell(btn.X+btn.W/2, btn.Y+btn.H/2, 80, 24) {
		t.Fatal("click inside the button should restart")
	}
	if r.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", r.Phase())
	}
}

func TestViewportCells(t *testing.T) {
	vp := newViewport(80, 24, 1280, 720)

	got := vp.cells(core.RectF{X: 78, Y: 636, W: 124, H: 36})
	want := core.NewRect(4, 21, 8, 1)
	if got != want {
		t.Errorf("cells = %+v, want %+v", got, want)
	}

	tiny := vp.cells(core.RectF{X: 0, Y: 0, W: 1, H: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect should cover one cell, got %+v", tiny)
	}
}
