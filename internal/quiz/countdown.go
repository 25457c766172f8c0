package quiz

// Countdown is the session-scoped handle for the quiz timer. Ticks are only
// accepted while it is armed for the same session.
type Countdown struct {
	session int
	running bool
}

// Start arms the countdown for a session, replacing any previous one.
func (c *Countdown) Start(sessionID int) {
	c.session = sessionID
	c.running = true
}

// Stop disarms the countdown. Stopping a stopped countdown is a no-op; the
// return value reports whether it was running.
func (c *Countdown) Stop() bool {
	was := c.running
	c.running = false
	return was
}

// Running reports whether the countdown is armed.
func (c *Countdown) Running() bool { return c.running }

// Session returns the session the countdown was last armed for.
func (c *Countdown) Session() int { return c.session }

// Accepts reports whether a tick for sessionID should be applied.
func (c *Countdown) Accepts(sessionID int) bool {
	return c.running && c.session == sessionID
}
