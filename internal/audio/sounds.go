package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length wave whose frequency glides
// linearly from freq to end.
type oscillator struct {
	freq, end float64
	phase     float64
	pos       int
	length    int
	wave      Wave
	rate      beep.SampleRate
	seed      uint32
}

// NewOscillator returns a streamer of the given wave lasting d.
// A zero end frequency keeps the pitch constant.
func NewOscillator(wave Wave, freq, end float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if end == 0 {
		end = freq
	}
	return &oscillator{
		freq:   freq,
		end:    end,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		seed:   0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/math.MaxUint32*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.pos) / float64(o.length)
		freq := o.freq + (o.end-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
	decay    float64 // Release rate per second
	rate     beep.SampleRate
}

// NewEnvelope shapes s over d with the given attack time and decay rate.
func NewEnvelope(s beep.Streamer, d, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(d),
		decay:    decay,
		rate:     rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		if e.pos >= e.total {
			return i, i > 0
		}
		var vol float64
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else {
			vol = math.Exp(-e.decay * float64(e.pos-e.attack) / float64(e.rate))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations.
const (
	shotDuration      = 80 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	hitDuration       = 500 * time.Millisecond
	levelNoteDuration = 90 * time.Millisecond
	gameOverDuration  = 900 * time.Millisecond
)

// shotSound is a short descending zap.
func shotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(WaveSquare, 1400, 500, shotDuration, rate)
	return newVolume(NewEnvelope(osc, shotDuration, 2*time.Millisecond, 30, rate), 0.25)
}

// explosionSound is filtered noise over a low rumble.
func explosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(WaveNoise, 0, 0, explosionDuration, rate), explosionDuration, 5*time.Millisecond, 9, rate)
	rumble := NewEnvelope(NewOscillator(WaveSine, 120, 50, explosionDuration, rate), explosionDuration, 5*time.Millisecond, 6, rate)
	return beep.Mix(newVolume(noise, 0.35), newVolume(rumble, 0.4))
}

// hitSound is a harsh falling saw.
func hitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(WaveSaw, 300, 60, hitDuration, rate)
	return newVolume(NewEnvelope(osc, hitDuration, 5*time.Millisecond, 4, rate), 0.45)
}

// levelUpSound is a rising arpeggio.
func levelUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(WaveSquare, f, 0, levelNoteDuration, rate)
		parts = append(parts, NewEnvelope(osc, levelNoteDuration, 3*time.Millisecond, 12, rate))
	}
	return newVolume(beep.Seq(parts...), 0.2)
}

// gameOverSound is a long descending tone.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(WaveSine, 440, 110, gameOverDuration, rate)
	return newVolume(NewEnvelope(osc, gameOverDuration, 10*time.Millisecond, 2, rate), 0.4)
}

// Effect builds a fresh streamer for the sound.
func Effect(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundShot:
		return shotSound(rate)
	case SoundExplosion:
		return explosionSound(rate)
	case SoundHit:
		return hitSound(rate)
	case SoundLevelUp:
		return levelUpSound(rate)
	case SoundGameOver:
		return gameOverSound(rate)
	default:
		return nil
	}
}
