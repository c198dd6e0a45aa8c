package core

// Sound names a feedback cue the game asks the audio collaborator to play.
type Sound int

const (
	SoundSelect Sound = iota // A container was selected
	SoundMove                // A legal transfer started
	SoundWin                 // The puzzle was solved
	SoundError               // A transfer was rejected
)

// Sounds lists every cue, in declaration order.
func Sounds() []Sound {
	return []Sound{SoundSelect, SoundMove, SoundWin, SoundError}
}

// String returns the cue name. It doubles as the asset file stem
// (select.wav, move.wav, ...).
func (s Sound) String() string {
	switch s {
	case SoundSelect:
		return "select"
	case SoundMove:
		return "move"
	case SoundWin:
		return "win"
	case SoundError:
		return "error"
	default:
		return "unknown"
	}
}

// Audio plays feedback cues and background music. Implementations absorb
// their own failures; a game never sees an audio error.
type Audio interface {
	Play(s Sound)
	ToggleMusic()
	ToggleSound()
	MusicEnabled() bool
	SoundEnabled() bool
}

// NopAudio is an Audio that plays nothing. Both channels report off.
type NopAudio struct{}

func (NopAudio) Play(Sound)         {}
func (NopAudio) ToggleMusic()       {}
func (NopAudio) ToggleSound()       {}
func (NopAudio) MusicEnabled() bool { return false }
func (NopAudio) SoundEnabled() bool { return false }
