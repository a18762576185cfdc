package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. log2(0) is -Inf, so zero volume is
// mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// paintSteps are semitone offsets from A4, a major pentatonic run so any
// palette size stays consonant
var paintSteps = []int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

// PaintFrequency returns the tone for a palette index. Index 0 has no tone.
func PaintFrequency(index int) float64 {
	if index <= 0 {
		return 0
	}
	i := (index - 1) % len(paintSteps)
	octave := (index - 1) / len(paintSteps)
	semis := paintSteps[i] + 24*octave
	return 440.0 * math.Pow(2, float64(semis)/12)
}

// CreatePaintSound generates a short pluck whose pitch rises with the palette
// index. Index 0 (erase back to background) is a low noise tick.
func CreatePaintSound(index int, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	if index <= 0 {
		noise := NewOscillator(0, EraseSoundDuration, WaveNoise, rate)
		shaped := NewEnvelope(noise, EraseSoundDuration, EraseSoundAttack, EraseSoundRelease, rate)
		return newVolume(shaped, 0.4*cfg.MasterVolume)
	}

	osc := NewOscillator(PaintFrequency(index), PaintSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, PaintSoundDuration, PaintSoundAttack, PaintSoundRelease, rate)
	return newVolume(shaped, cfg.MasterVolume)
}

// CreateErrorSound generates a short harsh buzz for a rejected import
func CreateErrorSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, ErrorSoundDuration, ErrorSoundAttack, ErrorSoundRelease, rate)
	return newVolume(shaped, 0.8*cfg.MasterVolume)
}

// CreateImportSound generates a two-note chime for a successful import
func CreateImportSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(987.77, ImportSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, ImportSoundNote1Duration, ImportSoundAttack, ImportSoundNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, ImportSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, ImportSoundNote2Duration, ImportSoundAttack, ImportSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3*cfg.MasterVolume)
}
