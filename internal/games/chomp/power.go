package chomp

// PowerPelletManager owns the frightened window: it opens the window
// when a pellet is collected, counts it down, and reverts only the
// ghosts that are still frightened when it closes. A ghost eaten and
// respawned inside the window is left alone at expiry.
type PowerPelletManager struct {
	duration int

	active bool
	timer  int

	affected []*Ghost
}

// NewPowerPelletManager creates an idle manager opening windows of the
// given length. Non-positive durations fall back to the standard one.
func NewPowerPelletManager(duration int) *PowerPelletManager {
	if duration <= 0 {
		duration = frightenedDuration
	}
	return &PowerPelletManager{duration: duration}
}

// Activate opens a frightened window over every non-eaten ghost.
// Collecting a second pellet mid-window refreshes the timer and
// re-frightens any ghost that has meanwhile returned to play.
func (pm *PowerPelletManager) Activate(ghosts []*Ghost) {
	pm.active = true
	pm.timer = pm.duration
	pm.affected = pm.affected[:0]

	for _, g := range ghosts {
		if g.Mode() == ModeEaten {
			continue
		}
		g.SetFrightened(pm.duration)
		pm.affected = append(pm.affected, g)
	}
}

// Update decays the window by one tick. When it closes, ghosts in the
// affected set that are still frightened revert to their scheduled
// mode and the eat progression resets.
func (pm *PowerPelletManager) Update(scores *ScoreManager) {
	if !pm.active {
		return
	}
	pm.timer--
	if pm.timer > 0 {
		return
	}

	pm.active = false
	pm.timer = 0
	for _, g := range pm.affected {
		g.EndFrightened()
	}
	pm.affected = pm.affected[:0]
	scores.ResetGhostMultiplier()
}

// Deactivate closes the window immediately without touching ghost
// modes. Used on life loss and level change, where the ghosts are
// reset separately.
func (pm *PowerPelletManager) Deactivate() {
	pm.active = false
	pm.timer = 0
	pm.affected = pm.affected[:0]
}

// Active reports whether a frightened window is open.
func (pm *PowerPelletManager) Active() bool {
	return pm.active
}

// Remaining returns the ticks left in the open window, 0 when closed.
func (pm *PowerPelletManager) Remaining() int {
	return pm.timer
}
