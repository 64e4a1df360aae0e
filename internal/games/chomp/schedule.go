package chomp

// Phase is one entry of the scatter/chase timetable.
type Phase struct {
	Mode     GhostMode
	Duration int // ticks, 0 means forever
}

// ModeSchedule is the global scatter/chase timetable. One instance is
// shared by every ghost; each ghost keeps only its own cursor into it,
// so the table itself can never drift between ghosts.
type ModeSchedule struct {
	phases []Phase
}

// NewModeSchedule builds the standard timetable: short scatter bursts
// between long chase phases, ending in an open-ended chase.
func NewModeSchedule() *ModeSchedule {
	return &ModeSchedule{
		phases: []Phase{
			{Mode: ModeScatter, Duration: 420},
			{Mode: ModeNormal, Duration: 1200},
			{Mode: ModeScatter, Duration: 420},
			{Mode: ModeNormal, Duration: 1200},
			{Mode: ModeScatter, Duration: 300},
			{Mode: ModeNormal, Duration: 1200},
			{Mode: ModeScatter, Duration: 300},
			{Mode: ModeNormal, Duration: 0},
		},
	}
}

// Len returns the number of phases in the timetable.
func (s *ModeSchedule) Len() int {
	return len(s.phases)
}

// PhaseAt returns the phase at the given cursor index. Indexes past the
// end clamp to the final phase.
func (s *ModeSchedule) PhaseAt(index int) Phase {
	if index >= len(s.phases) {
		index = len(s.phases) - 1
	}
	if index < 0 {
		index = 0
	}
	return s.phases[index]
}

// ScheduleCursor tracks one ghost's progress through the shared
// timetable. Ticking is suspended by the ghost while it is frightened,
// eaten, or inside the house, and resumes where it stopped.
type ScheduleCursor struct {
	Index int
	Timer int
}

// Tick advances the cursor by one tick against the given schedule and
// reports whether the cursor moved to a new phase. The final phase
// never expires.
func (c *ScheduleCursor) Tick(s *ModeSchedule) bool {
	phase := s.PhaseAt(c.Index)
	if phase.Duration == 0 {
		return false
	}
	c.Timer++
	if c.Timer >= phase.Duration {
		c.Timer = 0
		c.Index++
		return true
	}
	return false
}

// Mode returns the mode the timetable currently dictates for this cursor.
func (c *ScheduleCursor) Mode(s *ModeSchedule) GhostMode {
	return s.PhaseAt(c.Index).Mode
}

// Reset rewinds the cursor to the start of the timetable.
func (c *ScheduleCursor) Reset() {
	c.Index = 0
	c.Timer = 0
}
