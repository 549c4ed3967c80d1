package bubbles

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-trouble/internal/config"
	"github.com/vovakirdan/bubble-trouble/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g
}

// scriptedInputs sweeps the shooter back and forth while tapping fire.
func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%60 < 30:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(600)

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot().Hash()

	g.Step(core.NewInputFrame())
	if g.Snapshot().Hash() == before {
		t.Error("hash should change after a step moves the bubbles")
	}
}

func TestGameScoreInvariants(t *testing.T) {
	g := newTestGame(t)
	prevScore, prevHealth := 0, g.State().Health

	for i, in := range scriptedInputs(3000) {
		res := g.Step(in)
		st := res.State

		popped := 0
		hits := 0
		for _, e := range res.Events {
			switch e.Kind {
			case core.EventBubblePopped:
				popped++
			case core.EventShooterHit:
				hits++
			}
		}

		if st.Score-prevScore != 10*popped {
			t.Fatalf("tick %d: score went %d -> %d with %d pops", i, prevScore, st.Score, popped)
		}
		if prevHealth-st.Health != hits {
			t.Fatalf("tick %d: health went %d -> %d with %d hits", i, prevHealth, st.Health, hits)
		}
		if st.Health < 0 {
			t.Fatalf("tick %d: health below zero", i)
		}
		if st.GameOver {
			if st.Health > 0 {
				t.Fatalf("game over with health %d", st.Health)
			}
			break
		}
		for _, b := range g.Session().Bullets {
			if b.OffScreen() {
				t.Fatalf("tick %d: off-screen bullet survived the collision pass", i)
			}
		}
		prevScore, prevHealth = st.Score, st.Health
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	for _, in := range scriptedInputs(100) {
		g.Step(in)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	st := g.State()
	if st.Score != 0 || st.Health != 3 || st.GameOver {
		t.Errorf("Reset should restore the initial state, got %+v", st)
	}
	if g.Session().Tick != 0 || len(g.Session().Bullets) != 0 {
		t.Error("Reset should clear ticks and bullets")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD should show score, got %q", hud)
	}
	if !strings.Contains(hud, "Health: ♥♥♥") {
		t.Errorf("HUD should show three hearts, got %q", hud)
	}
	if screen.Get(0, 1) != '┌' {
		t.Error("field border should start below the HUD")
	}

	var cyan, red int
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			switch screen.GetCell(x, y).Color {
			case core.ColorCyan:
				cyan++
			case core.ColorRed:
				red++
			}
		}
	}
	if cyan == 0 {
		t.Error("bubbles should be drawn in cyan")
	}
	if red == 0 {
		t.Error("shooter body should be drawn in red")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	s := g.Session()
	s.Health = 1
	s.Score = 30
	s.Bubbles[0].X, s.Bubbles[0].Y = s.Shooter.X, s.Shooter.Y

	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") || !strings.Contains(screen.String(), "Your score: 30") {
		t.Errorf("game over overlay missing:\n%s", screen.String())
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}
