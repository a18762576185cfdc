package audio

import "time"

// Config controls audio output
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns enabled audio at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// Sound timings
const (
	PaintSoundDuration = 90 * time.Millisecond
	PaintSoundAttack   = 3 * time.Millisecond
	PaintSoundRelease  = 70 * time.Millisecond

	EraseSoundDuration = 60 * time.Millisecond
	EraseSoundAttack   = 2 * time.Millisecond
	EraseSoundRelease  = 40 * time.Millisecond

	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond

	ImportSoundNote1Duration = 80 * time.Millisecond
	ImportSoundNote2Duration = 280 * time.Millisecond
	ImportSoundAttack        = 5 * time.Millisecond
	ImportSoundNote1Release  = 40 * time.Millisecond
	ImportSoundNote2Release  = 200 * time.Millisecond
)
