package chomp

// Point values and life count.
const (
	DotPoints         = 10
	PowerPelletPoints = 50
	GhostBasePoints   = 200

	StartingLives = 3

	// BonusLifeScore is the score at which the one extra life is
	// awarded, arcade convention.
	BonusLifeScore = 10000

	maxGhostMultiplier = 8
)

// ScoreManager owns score, lives, level progression, and the
// consecutive-ghost-eat multiplier. It is plain accounting; the
// orchestrators decide when to call it.
type ScoreManager struct {
	score int
	level int
	lives int

	startingLives    int
	bonusLifeAwarded bool

	ghostMultiplier int

	totalDots     int
	collectedDots int

	gameOver bool
}

// NewScoreManager creates a score manager for a fresh game. A
// non-positive startingLives falls back to the default life count.
func NewScoreManager(startingLives int) *ScoreManager {
	if startingLives <= 0 {
		startingLives = StartingLives
	}
	return &ScoreManager{
		level:           1,
		lives:           startingLives,
		startingLives:   startingLives,
		ghostMultiplier: 1,
	}
}

// ResetGame restores all counters to their initial values and clears
// the game-over latch.
func (s *ScoreManager) ResetGame() {
	s.score = 0
	s.level = 1
	s.lives = s.startingLives
	s.bonusLifeAwarded = false
	s.ghostMultiplier = 1
	s.totalDots = 0
	s.collectedDots = 0
	s.gameOver = false
}

// InitializeLevel records the dot count of the current level without
// advancing the level number.
func (s *ScoreManager) InitializeLevel(totalDots int) {
	s.totalDots = totalDots
	s.collectedDots = 0
}

// StartNewLevel advances to the next level and resets per-level state.
func (s *ScoreManager) StartNewLevel(totalDots int) {
	s.level++
	s.totalDots = totalDots
	s.collectedDots = 0
	s.ghostMultiplier = 1
}

// CollectDot awards the dot points and returns them.
func (s *ScoreManager) CollectDot() int {
	s.score += DotPoints
	s.collectedDots++
	s.checkBonusLife()
	return DotPoints
}

// CollectPowerPellet awards the pellet points and restarts the
// ghost-eat progression at the base value.
func (s *ScoreManager) CollectPowerPellet() int {
	s.score += PowerPelletPoints
	s.ghostMultiplier = 1
	s.checkBonusLife()
	return PowerPelletPoints
}

// EatGhost awards points for eating a ghost. Consecutive eats within
// one power window double up to the cap: 200, 400, 800, 1600, 1600.
func (s *ScoreManager) EatGhost() int {
	points := GhostBasePoints * s.ghostMultiplier
	s.score += points
	s.ghostMultiplier *= 2
	if s.ghostMultiplier > maxGhostMultiplier {
		s.ghostMultiplier = maxGhostMultiplier
	}
	s.checkBonusLife()
	return points
}

// checkBonusLife hands out the extra life the first time the score
// crosses the threshold. One per game, rearmed by ResetGame.
func (s *ScoreManager) checkBonusLife() {
	if s.bonusLifeAwarded || s.score < BonusLifeScore {
		return
	}
	s.bonusLifeAwarded = true
	s.GainLife()
}

// ResetGhostMultiplier restarts the eat progression. Called when a
// power window expires.
func (s *ScoreManager) ResetGhostMultiplier() {
	s.ghostMultiplier = 1
}

// LoseLife removes a life and reports whether the game is over. The
// game-over latch is one-way until ResetGame.
func (s *ScoreManager) LoseLife() bool {
	s.lives--
	s.ghostMultiplier = 1
	if s.lives <= 0 {
		s.lives = 0
		s.gameOver = true
	}
	return s.gameOver
}

// GainLife adds an extra life.
func (s *ScoreManager) GainLife() {
	s.lives++
}

// AddBonusPoints adds points outside the normal pickup flow, such as
// the level-clear award.
func (s *ScoreManager) AddBonusPoints(points int) {
	s.score += points
	s.checkBonusLife()
}

// IsLevelComplete reports whether every dot of the level is collected.
func (s *ScoreManager) IsLevelComplete() bool {
	return s.collectedDots >= s.totalDots
}

// IsGameOver reports the game-over latch.
func (s *ScoreManager) IsGameOver() bool {
	return s.gameOver
}

// Score returns the current score.
func (s *ScoreManager) Score() int {
	return s.score
}

// Level returns the current level number, starting at 1.
func (s *ScoreManager) Level() int {
	return s.level
}

// Lives returns the remaining lives.
func (s *ScoreManager) Lives() int {
	return s.lives
}

// DotsCollected returns how many dots of the level are already eaten.
// Ghost house release thresholds key off this counter.
func (s *ScoreManager) DotsCollected() int {
	return s.collectedDots
}

// DotsRemaining returns how many dots the level still holds.
func (s *ScoreManager) DotsRemaining() int {
	if r := s.totalDots - s.collectedDots; r > 0 {
		return r
	}
	return 0
}

// LevelProgress returns the collected fraction of the level, 0 to 1.
func (s *ScoreManager) LevelProgress() float64 {
	if s.totalDots == 0 {
		return 1
	}
	return float64(s.collectedDots) / float64(s.totalDots)
}
