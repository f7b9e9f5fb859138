package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/registry"
	"github.com/vovakirdan/runaway/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", runeKey('w'), core.ActionJump, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"m mutes", runeKey('m'), core.ActionMute, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x is unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestFrameClock(t *testing.T) {
	var c frameClock
	start := time.Unix(100, 0)

	if got := c.tick(start); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
	if got := c.tick(start.Add(20 * time.Millisecond)); got != 20*time.Millisecond {
		t.Errorf("second tick = %v, want 20ms", got)
	}
	if got := c.tick(start); got != 0 {
		t.Errorf("tick back in time = %v, want 0", got)
	}

	c.reset()
	if got := c.tick(start.Add(time.Second)); got != 0 {
		t.Errorf("tick after reset = %v, want 0", got)
	}
}

// scriptedGame is a game whose state is set by the test.
type scriptedGame struct {
	state   core.GameState
	cues    []core.Cue
	inputs  []core.InputFrame
	resized [2]int
	resets  int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.Set(0, 0, '@') }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *scriptedGame) LastRun() (registry.RunRecord, bool) {
	if !g.state.GameOver {
		return registry.RunRecord{}, false
	}
	return registry.RunRecord{Score: g.state.Score, Distance: 1234, Cause: "fell"}, true
}

// recordingPlayer records played cues.
type recordingPlayer struct {
	mu     sync.Mutex
	played []core.Cue
	muted  bool
}

func (p *recordingPlayer) Play(cues ...core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, cues...)
}

func (p *recordingPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *recordingPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *recordingPlayer) Close() {}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g registry.Game, store *storage.Store, sound *recordingPlayer) GameModel {
	return NewGameModel(g, store, sound, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
}

func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(GameModel)
}

func TestGameModelStepsWithMeasuredTime(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Phase: core.PhasePlaying}, cues: []core.Cue{core.CueFootstep}}
	sound := &recordingPlayer{}
	m := newTestModel(g, nil, sound)

	next, _ := m.Update(runeKey(' '))
	m = next.(GameModel)

	start := time.Unix(100, 0)
	m = tick(t, m, start)
	m = tick(t, m, start.Add(25*time.Millisecond))

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("first step should carry the jump")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("input should be cleared after a step")
	}
	if g.inputs[0].Elapsed != 0 || g.inputs[1].Elapsed != 25*time.Millisecond {
		t.Errorf("elapsed = %v, %v; want 0, 25ms", g.inputs[0].Elapsed, g.inputs[1].Elapsed)
	}
	if len(sound.played) != 2 {
		t.Errorf("played %v, want two footsteps", sound.played)
	}
}

func TestGameModelRecordsRunOnce(t *testing.T) {
	store := testStore(t)
	g := &scriptedGame{state: core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: 420}}
	m := newTestModel(g, store, &recordingPlayer{})

	start := time.Unix(100, 0)
	for i := range 3 {
		m = tick(t, m, start.Add(time.Duration(i)*16*time.Millisecond))
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	if scores[0].Score != 420 || scores[0].Cause != "fell" || scores[0].Distance != 1234 {
		t.Errorf("saved %+v", scores[0])
	}

	// A new game over after returning home is recorded again
	g.state = core.GameState{Phase: core.PhaseHome}
	m = tick(t, m, start.Add(time.Second))
	g.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: 10}
	tick(t, m, start.Add(2*time.Second))

	scores, err = store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("saved %d runs, want 2", len(scores))
	}
}

func TestGameModelKeys(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Phase: core.PhasePlaying}}
	sound := &recordingPlayer{}
	m := newTestModel(g, nil, sound)
	m = tick(t, m, time.Unix(100, 0))

	next, _ := m.Update(runeKey('m'))
	m = next.(GameModel)
	if !sound.Muted() {
		t.Error("m should mute")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.BackToMenu() {
		t.Error("back should be ignored during a live run")
	}

	g.state.Paused = true
	m = tick(t, m, time.Unix(101, 0))
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back should leave a paused run")
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Phase: core.PhasePlaying}}
	m := newTestModel(g, nil, &recordingPlayer{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, want [100 30]", g.resized)
	}
	if g.resets != 0 {
		t.Errorf("resets = %d, want 0", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorBrown)
	s.DrawTextColored(2, 0, "cd", core.ColorDarkGray)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered %q, want it to contain %q", out, want)
		}
	}
}
