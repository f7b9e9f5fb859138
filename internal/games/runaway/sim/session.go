// Package sim is the endless-runner simulation: player physics, world
// generation and scrolling, collision resolution, the pursuer, and the
// Home -> Countdown -> Playing -> GameOver state machine.
// It has no rendering, input or timing dependencies; hosts drive it with Step.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/vovakirdan/runaway/internal/config"
)

// State is the lifecycle state of a session.
type State int

const (
	StateHome State = iota
	StateCountdown
	StatePlaying
	StateGameOver
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// defaultViewport is used when no Viewport option is given.
func defaultViewport(cfg config.RunawayConfig) Viewport {
	return FixedViewport{W: 640, H: 384, Ground: cfg.World.GroundOffset}
}

// Option configures a Session.
type Option func(*Session)

// WithRNG sets the random source for world generation.
func WithRNG(r RNG) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = NewRNG(seed) }
}

// WithStore sets the best-score store.
func WithStore(store BestStore) Option {
	return func(s *Session) { s.store = store }
}

// WithViewport sets the viewport queried on every step.
func WithViewport(v Viewport) Option {
	return func(s *Session) { s.viewport = v }
}

// WithHooks sets the event hooks.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// WithReadyGate makes the session ignore Start and Step until ready is closed,
// for hosts that load assets before the first frame.
func WithReadyGate(ready <-chan struct{}) Option {
	return func(s *Session) { s.ready = ready }
}

// Session is one player's run state and the state machine around it.
type Session struct {
	cfg      config.RunawayConfig
	rng      RNG
	store    BestStore
	viewport Viewport
	hooks    Hooks
	ready    <-chan struct{}

	difficulty *config.DifficultyManager
	world      *World
	player     Player
	pursuer    *Pursuer

	state     State
	now       float64 // ms of Playing time since the run started
	score     float64
	lives     int
	best      int
	paused    bool
	fatal     FatalReason
	countdown Countdown
	autoHome  Countdown
}

// NewSession validates cfg and creates a session in the Home state.
// The best score is loaded from the store once, here.
func NewSession(cfg config.RunawayConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRNG(1)
	}
	if s.store == nil {
		s.store = NewMemoryStore(0)
	}
	if s.viewport == nil {
		s.viewport = defaultViewport(cfg)
	}

	view := readViewport(s.viewport)
	if view.W <= 0 || view.H <= 0 || view.GroundY <= cfg.Player.Height || view.GroundY > view.H {
		return nil, fmt.Errorf("sim: %w: viewport %vx%v with ground at %v cannot fit the player",
			config.ErrInvalidConfig, view.W, view.H, view.GroundY)
	}

	best, err := s.store.LoadBest()
	if err != nil {
		s.hooks.storeError(err)
	}
	s.best = best

	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.world = NewWorld(&s.cfg, s.difficulty, s.rng)
	s.resetRun(view)
	return s, nil
}

// WaitReady blocks until the ready gate opens or ctx is done.
func (s *Session) WaitReady(ctx context.Context) error {
	if s.ready == nil {
		return nil
	}
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the ready gate is open.
func (s *Session) Ready() bool {
	if s.ready == nil {
		return true
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Start begins a run from Home. It reports whether a transition happened.
func (s *Session) Start() bool {
	if s.state != StateHome || !s.Ready() {
		return false
	}
	if s.cfg.Session.CountdownMs > 0 {
		s.resetRun(readViewport(s.viewport))
		s.countdown.Arm(s.cfg.Session.CountdownMs)
		s.setState(StateCountdown)
		return true
	}
	s.enterPlaying()
	return true
}

// Dismiss leaves GameOver for Home. It reports whether a transition happened.
func (s *Session) Dismiss() bool {
	if s.state != StateGameOver {
		return false
	}
	s.enterHome()
	return true
}

// Jump requests a jump. Ignored outside Playing, while paused or stunned.
func (s *Session) Jump() bool {
	if s.state != StatePlaying || s.paused {
		return false
	}
	jumped, double := s.player.Jump(s.cfg.Physics.JumpImpulse, s.now)
	if jumped {
		s.hooks.jumped(double)
	}
	return jumped
}

// Pause toggles the pause flag while Playing.
func (s *Session) Pause() bool {
	if s.state != StatePlaying {
		return false
	}
	s.paused = !s.paused
	return true
}

// Step advances the session by dtMs of frame time, clamped to max_delta_ms.
func (s *Session) Step(dtMs float64) {
	if !s.Ready() {
		return
	}
	dt := ClampDelta(dtMs, s.cfg.Physics.MaxDeltaMs)
	if dt == 0 {
		return
	}

	switch s.state {
	case StateCountdown:
		if s.countdown.Advance(dt) {
			s.enterPlaying()
		}
	case StatePlaying:
		if !s.paused {
			s.stepPlaying(dt)
		}
	case StateGameOver:
		if s.autoHome.Advance(dt) {
			s.enterHome()
		}
	}
}

// ClampDelta bounds a frame delta to [0, maxMs]. NaN becomes 0.
func ClampDelta(dtMs, maxMs float64) float64 {
	if math.IsNaN(dtMs) || dtMs <= 0 {
		return 0
	}
	return math.Min(dtMs, maxMs)
}

// stepPlaying runs one simulation step. The order is fixed: ground line, world, pursuer,
// player physics, platforms, pits and ground, pickups, hazards, pursuer contact.
// A fatal condition ends the step immediately.
func (s *Session) stepPlaying(dt float64) {
	f := dt / s.cfg.Physics.ReferenceFrameMs
	view := readViewport(s.viewport)
	s.now += dt

	s.player.Y += s.world.Reanchor(view.GroundY)
	s.world.Advance(dt, f, view)

	if s.pursuer != nil {
		s.pursuer.Track(s.player, s.player.Stunned.Active(s.now), view.GroundY, f)
	}

	jumps := maxJumps(s.cfg.Player)
	prevBottom := s.player.Bottom()
	s.player.Integrate(s.cfg.Physics, f)

	onPlatform := landOnPlatform(&s.player, prevBottom, s.world.Platforms, s.world.Scroll, s.cfg.Player.LandingBand, jumps)
	if !onPlatform {
		overPit := s.world.PitAt(s.player.CenterX())
		if s.player.settle(overPit, view.GroundY, view.H, jumps) {
			s.enterGameOver(FatalFell)
			return
		}
	}

	for _, c := range collectPickups(s.player.Box(), &s.world.Pools, s.world.Scroll) {
		s.collect(c)
	}

	if hazardContact(s.player.Box(), s.world.Hazards, s.world.Scroll, s.cfg.Hazards.HitboxShrink) {
		if s.hurt() {
			s.enterGameOver(FatalHazard)
			return
		}
	}

	if s.pursuer != nil && s.player.Box().Intersects(s.pursuer.Box()) {
		if s.cfg.Pursuer.Lethal {
			s.enterGameOver(FatalCaught)
			return
		}
		if s.hurt() {
			s.enterGameOver(FatalHazard)
			return
		}
	}

	s.addScore(s.cfg.Session.ScorePerFrame * f)

	if s.player.stepFootstep(s.now, s.cfg.Player.FootstepIntervalMs) {
		s.hooks.footstep()
	}
}

// collect applies a pickup. A heart at full lives is worth a coin instead.
func (s *Session) collect(c Collectible) {
	switch c.Kind {
	case KindCoin:
		s.addScore(float64(s.cfg.Pickups.Coins.Value))
	case KindHeart:
		if s.lives < s.cfg.Session.MaxLives {
			s.lives++
			s.hooks.livesChanged(s.lives)
		} else {
			s.addScore(float64(s.cfg.Pickups.Coins.Value))
		}
	}
	s.hooks.collected(c.Kind)
}

// hurt applies hazard damage unless the player is invincible.
// It reports whether the hit was fatal.
func (s *Session) hurt() bool {
	if s.player.Invincible.Active(s.now) {
		return false
	}
	h := s.cfg.Hazards
	if h.FatalOnContact {
		s.lives = 0
	} else {
		s.lives = max(0, s.lives-h.Damage)
	}
	s.hooks.livesChanged(s.lives)
	if s.lives == 0 {
		return true
	}
	s.player.Invincible.Extend(s.now, h.InvincibilityMs)
	if h.StunMs > 0 {
		s.player.Stunned.Extend(s.now, h.StunMs)
	}
	return false
}

func (s *Session) addScore(delta float64) {
	if delta <= 0 {
		return
	}
	before := s.Score()
	s.score += delta
	if after := s.Score(); after != before {
		s.hooks.scoreChanged(after)
	}
}

// resetRun restores the run-scoped state: score, lives, player, pursuer and world.
func (s *Session) resetRun(view metrics) {
	s.now = 0
	s.score = 0
	s.lives = s.cfg.Session.Lives
	s.paused = false
	s.fatal = FatalNone
	s.world.Reset()
	s.world.Reanchor(view.GroundY)
	s.player = newPlayer(s.cfg.Player, view.GroundY)
	s.pursuer = nil
	if s.cfg.Pursuer.Enabled {
		s.pursuer = newPursuer(s.cfg.Pursuer, s.player, view.GroundY)
	}
}

func (s *Session) enterPlaying() {
	s.countdown.Stop()
	s.resetRun(readViewport(s.viewport))
	s.setState(StatePlaying)
	s.hooks.scoreChanged(0)
	s.hooks.livesChanged(s.lives)
}

func (s *Session) enterGameOver(reason FatalReason) {
	s.fatal = reason
	s.paused = false
	s.best = max(s.best, s.Score())
	if err := s.store.SaveBest(s.best); err != nil {
		s.hooks.storeError(err)
	}
	if s.cfg.Session.GameOverReturnMs > 0 {
		s.autoHome.Arm(s.cfg.Session.GameOverReturnMs)
	}
	s.setState(StateGameOver)
	s.hooks.fatal(reason)
}

func (s *Session) enterHome() {
	s.autoHome.Stop()
	s.countdown.Stop()
	s.paused = false
	s.player.Stunned.Clear()
	s.setState(StateHome)
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	if from != to {
		s.hooks.stateChanged(from, to)
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the whole-number score of the current run.
func (s *Session) Score() int {
	return int(math.Floor(s.score))
}

// Best returns the best score seen by this session, including the store's.
func (s *Session) Best() int {
	return s.best
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Paused reports whether the run is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunawayConfig {
	return s.cfg
}
