package chomp

// Collision tuning.
const (
	collisionRadius   = 10.0
	respawnGraceTicks = 120
)

// CollisionOutcome describes what a collision pass did.
type CollisionOutcome struct {
	GhostEaten   bool
	PointsEarned int
	LifeLost     bool
	GameOver     bool
}

// CollisionManager resolves player/ghost contact once per tick. At
// most one frightened ghost is eaten per pass; a life loss resets all
// positions and opens a grace window during which contact is ignored.
type CollisionManager struct {
	graceTimer int
}

// NewCollisionManager creates a collision manager with no grace active.
func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Resolve checks the player against every ghost and applies the first
// meaningful contact. Eaten ghosts never collide.
func (cm *CollisionManager) Resolve(player *Player, ghosts []*Ghost, scores *ScoreManager, power *PowerPelletManager) CollisionOutcome {
	var out CollisionOutcome

	if cm.graceTimer > 0 {
		cm.graceTimer--
		return out
	}

	pc := player.Center()
	for _, g := range ghosts {
		if pc.DistanceTo(g.Center()) > collisionRadius {
			continue
		}

		switch {
		case g.IsVulnerable():
			out.GhostEaten = true
			out.PointsEarned = scores.EatGhost()
			g.SetEaten()
			return out

		case g.IsDangerous():
			out.LifeLost = true
			out.GameOver = scores.LoseLife()
			cm.resetAfterLifeLoss(player, ghosts, power)
			return out
		}
	}
	return out
}

func (cm *CollisionManager) resetAfterLifeLoss(player *Player, ghosts []*Ghost, power *PowerPelletManager) {
	player.ResetPosition()
	for _, g := range ghosts {
		g.ResetPosition()
	}
	power.Deactivate()
	cm.graceTimer = respawnGraceTicks
}

// InGrace reports whether the post-respawn grace window is open.
func (cm *CollisionManager) InGrace() bool {
	return cm.graceTimer > 0
}

// ResetGrace clears any open grace window. Used on full game reset.
func (cm *CollisionManager) ResetGrace() {
	cm.graceTimer = 0
}
