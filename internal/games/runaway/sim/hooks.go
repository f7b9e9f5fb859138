package sim

// FatalReason tells why a run ended.
type FatalReason int

const (
	FatalNone FatalReason = iota
	// FatalFell means the player dropped out of the bottom of the world.
	FatalFell
	// FatalHazard means lives ran out, or a contact-fatal hazard was hit.
	FatalHazard
	// FatalCaught means the player touched a lethal pursuer.
	FatalCaught
)

// String returns a short description of the reason.
func (r FatalReason) String() string {
	switch r {
	case FatalFell:
		return "fell"
	case FatalHazard:
		return "hit"
	case FatalCaught:
		return "caught"
	default:
		return "none"
	}
}

// Hooks are optional signals for audio, HUD and persistence consumers.
// They are called synchronously from Step and must not mutate the session.
type Hooks struct {
	OnScoreChanged    func(score int)
	OnLivesChanged    func(lives int)
	OnFatal           func(reason FatalReason)
	OnFootstep        func()
	OnJumpPerformed   func(double bool)
	OnPickupCollected func(kind CollectibleKind)
	OnStateChanged    func(from, to State)
	OnStoreError      func(err error)
}

func (h Hooks) scoreChanged(score int) {
	if h.OnScoreChanged != nil {
		h.OnScoreChanged(score)
	}
}

func (h Hooks) livesChanged(lives int) {
	if h.OnLivesChanged != nil {
		h.OnLivesChanged(lives)
	}
}

func (h Hooks) fatal(reason FatalReason) {
	if h.OnFatal != nil {
		h.OnFatal(reason)
	}
}

func (h Hooks) footstep() {
	if h.OnFootstep != nil {
		h.OnFootstep()
	}
}

func (h Hooks) jumped(double bool) {
	if h.OnJumpPerformed != nil {
		h.OnJumpPerformed(double)
	}
}

func (h Hooks) collected(kind CollectibleKind) {
	if h.OnPickupCollected != nil {
		h.OnPickupCollected(kind)
	}
}

func (h Hooks) stateChanged(from, to State) {
	if h.OnStateChanged != nil {
		h.OnStateChanged(from, to)
	}
}

func (h Hooks) storeError(err error) {
	if h.OnStoreError != nil {
		h.OnStoreError(err)
	}
}
