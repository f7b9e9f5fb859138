package sim

// Countdown fires once after a duration of simulation time has elapsed.
// It is advanced explicitly by the step delta and never reads the wall clock.
// The zero value is stopped.
type Countdown struct {
	remaining float64
	armed     bool
}

// Arm starts (or restarts) the countdown with the given duration in ms.
func (c *Countdown) Arm(ms float64) {
	c.remaining = ms
	c.armed = true
}

// Stop disarms the countdown without firing it.
func (c *Countdown) Stop() {
	c.remaining = 0
	c.armed = false
}

// Advance consumes dt ms and reports whether the countdown fired during this call.
// A fired countdown disarms itself until re-armed.
func (c *Countdown) Advance(dt float64) bool {
	if !c.armed {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.armed = false
	return true
}

// Armed reports whether the countdown is still running.
func (c Countdown) Armed() bool {
	return c.armed
}

// Remaining returns the time left in ms, or 0 when stopped.
func (c Countdown) Remaining() float64 {
	if !c.armed || c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// Deadline is a point on the session clock before which something holds
// (invincibility, stun, footstep rate limiting).
// The zero value has already passed.
type Deadline struct {
	until float64
}

// Extend sets the deadline to now + ms.
func (d *Deadline) Extend(now, ms float64) {
	d.until = now + ms
}

// Clear expires the deadline immediately.
func (d *Deadline) Clear() {
	d.until = 0
}

// Active reports whether now is strictly before the deadline.
func (d Deadline) Active(now float64) bool {
	return now < d.until
}

// Until returns the deadline timestamp in ms.
func (d Deadline) Until() float64 {
	return d.until
}
