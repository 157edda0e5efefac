package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WhooshGenerator is a noisy tone whose pitch and volume fall over its
// lifetime, like a wheel slowing down. It ends after the given duration.
type WhooshGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
	noise   uint32
}

// NewWhooshGenerator creates a whoosh of length d.
func NewWhooshGenerator(sr beep.SampleRate, d time.Duration) *WhooshGenerator {
	return &WhooshGenerator{
		sr:      sr,
		samples: sr.N(d),
		noise:   0x9e3779b9,
	}
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)

		// Частота падает с 220 до 60 Гц
		freq := 220 - 160*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// xorshift для шипения
		g.noise ^= g.noise << 13
		g.noise ^= g.noise >> 17
		g.noise ^= g.noise << 5
		noise := float64(g.noise)/float64(math.MaxUint32)*2 - 1

		amplitude := 0.12 * (1 - progress) * math.Min(float64(g.pos)/float64(g.sr)/0.05, 1)
		sample := amplitude * (0.7*math.Sin(g.phase) + 0.3*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error {
	return nil
}

// ChimeGenerator plays notes one after another, each with a quick attack
// and exponential decay.
type ChimeGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	pos     int
}

// NewChimeGenerator creates a chime of the given notes, each lasting d.
func NewChimeGenerator(sr beep.SampleRate, notes []float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		notes:   notes,
		perNote: sr.N(d),
	}
}

// Len returns the total number of samples.
func (g *ChimeGenerator) Len() int {
	return g.perNote * len(g.notes)
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		note := g.notes[g.pos/g.perNote]
		local := float64(g.pos%g.perNote) / float64(g.sr)

		envelope := math.Min(local/0.005, 1) * math.Exp(-local*12)
		sample := 0.25 * envelope * (math.Sin(2*math.Pi*note*local) + 0.3*math.Sin(4*math.Pi*note*local))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
