package core

// Cue identifies a sound effect requested by the game.
// The game only raises cues; playback belongs to the platform.
type Cue int

const (
	CueBounce Cue = iota
	CueBrickBreak
	CueGameOver
	CueLaser
	CueCount // Sentinel for counting cues
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueBrickBreak:
		return "brick_break"
	case CueGameOver:
		return "game_over"
	case CueLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// FileName returns the asset file name for the cue.
func (c Cue) FileName() string {
	return c.String() + ".wav"
}

// AllCues returns every defined cue.
func AllCues() []Cue {
	cues := make([]Cue, 0, CueCount)
	for c := range CueCount {
		cues = append(cues, c)
	}
	return cues
}
