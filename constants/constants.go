package constants

// 1 for root, 1 for inversion, 1 for quality, 1 for color
const ChordSize = 4

const Octave = 12

// MaxMidiNote is the highest note a MIDI message can carry. Generated notes
// may go above it, up to 255.
const MaxMidiNote = 127

// semitones above the root
const (
	MinorThird   = 3
	MajorThird   = 4
	PerfectFifth = 7
	MajorSixth   = 9
	MinorSeventh = 10
	MajorSeventh = 11
	MajorNinth   = 14
	Eleventh     = 17
)

const (
	EnvConfigPath = "CHORDC_CONFIG"
	EnvChannel    = "CHORDC_CHANNEL"
	EnvVelocity   = "CHORDC_VELOCITY"
	EnvLogLevel   = "CHORDC_LOG_LEVEL"
)
