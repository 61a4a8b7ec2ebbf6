package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine tone with harmonics and a short
// attack/release envelope over its lifetime.
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
	gain    float64
}

// NewToneGenerator creates a tone of the given frequency and length.
func NewToneGenerator(sr beep.SampleRate, freq float64, samples int, gain float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, samples: samples, gain: gain}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= g.gain * envelope(g.pos, g.samples, g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error { return nil }

// SweepGenerator sweeps between two frequencies over its lifetime.
// Rising sweeps read as positive cues, falling ones as failures.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
	gain     float64
}

// NewSweepGenerator creates a frequency sweep of the given length.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, samples int, gain float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: samples, gain: gain}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := g.gain * envelope(g.pos, g.samples, g.sr) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }

// NoiseGenerator produces band-limited noise with a decaying
// envelope, used for explosions and crashes.
type NoiseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	gain    float64
	rng     *rand.Rand
	last    float64
}

// NewNoiseGenerator creates a noise burst of the given length.
func NewNoiseGenerator(sr beep.SampleRate, samples int, gain float64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, samples: samples, gain: gain, rng: rand.New(rand.NewSource(1))}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		// One-pole lowpass tames the hiss into a rumble.
		white := g.rng.Float64()*2 - 1
		g.last += 0.2 * (white - g.last)

		decay := 1.0 - float64(g.pos)/float64(g.samples)
		sample := g.gain * decay * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error { return nil }

// envelope is a short linear attack and release to avoid clicks.
func envelope(pos, total int, sr beep.SampleRate) float64 {
	attack := sr.N(5 * millisecond)
	release := sr.N(30 * millisecond)

	switch {
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos > total-release:
		return float64(total-pos) / float64(release)
	default:
		return 1.0
	}
}
