package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a streamer of the given wave, frequency and length.
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq * 1000))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
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
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s into a clip of length d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain. A non-positive gain is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Synthesized clips.

// JumpSound is a short rising blip.
func JumpSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	return withVolume(NewEnvelope(NewOscillator(880, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.35)
}

// CrashSound is a low saw buzz over noise.
func CrashSound(rate beep.SampleRate) beep.Streamer {
	d := 280 * time.Millisecond
	buzz := NewEnvelope(NewOscillator(110, d, WaveSaw, rate), d, 0, 200*time.Millisecond, rate)
	hiss := withVolume(NewEnvelope(NewOscillator(1, d, WaveNoise, rate), d, 0, 250*time.Millisecond, rate), 0.3)
	return withVolume(beep.Take(rate.N(d), beep.Mix(buzz, hiss)), 0.4)
}

// ScoreSound is a two-note chime.
func ScoreSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		d := 80 * time.Millisecond
		return NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), d, 2*time.Millisecond, 30*time.Millisecond, rate)
	}
	return withVolume(beep.Seq(note(988), note(1319)), 0.2)
}

// AmbientClip is a few seconds of meadow hum: a soft drone with occasional
// chirps. It is buffered and looped by the sound manager.
func AmbientClip(rate beep.SampleRate) beep.Streamer {
	d := 4 * time.Second
	drone := withVolume(beep.Mix(
		NewOscillator(110, d, WaveSine, rate),
		withVolume(NewOscillator(165, d, WaveSine, rate), 0.5),
	), 0.08)

	chirp := func(freq float64) beep.Streamer {
		cd := 60 * time.Millisecond
		return NewEnvelope(NewOscillator(freq, cd, WaveSine, rate), cd, 10*time.Millisecond, 30*time.Millisecond, rate)
	}
	pause := func(ms int) beep.Streamer {
		return beep.Silence(rate.N(time.Duration(ms) * time.Millisecond))
	}
	birds := withVolume(beep.Seq(
		pause(900), chirp(2637), pause(80), chirp(2349),
		pause(1500), chirp(3136), pause(60), chirp(3136), pause(60), chirp(2793),
	), 0.05)

	return beep.Take(rate.N(d), beep.Mix(drone, birds))
}
