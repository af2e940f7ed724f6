package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	impactDuration = 180 * time.Millisecond
	bumpDuration   = 60 * time.Millisecond
	bumpFrequency  = 220.0
)

// ThrusterGenerator produces the engine rumble, a low hum under filtered
// noise. It never ends.
type ThrusterGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise float64
	rng   *rand.Rand
}

// NewThrusterGenerator creates a thruster generator
func NewThrusterGenerator(sr beep.SampleRate) *ThrusterGenerator {
	return &ThrusterGenerator{
		sr:  sr,
		rng: rand.New(rand.NewPCG(1, 2)),
	}
}

func (g *ThrusterGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// One-pole low-pass keeps the hiss dull.
		g.noise += 0.08 * (g.rng.Float64()*2 - 1 - g.noise)
		hum := 0.25 * math.Sin(2*math.Pi*55*t)
		sample := 0.5 * (hum + g.noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrusterGenerator) Err() error {
	return nil
}

// ImpactGenerator produces a short thud whose pitch rises with impact speed
type ImpactGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	rng  *rand.Rand
}

// NewImpactGenerator creates an impact generator for a craft moving at speed
// world units per tick.
func NewImpactGenerator(sr beep.SampleRate, speed float64) *ImpactGenerator {
	return &ImpactGenerator{
		sr:   sr,
		freq: ImpactFrequency(speed),
		rng:  rand.New(rand.NewPCG(3, 4)),
	}
}

// ImpactFrequency maps a craft speed to the thud's base pitch
func ImpactFrequency(speed float64) float64 {
	speed = math.Max(0, math.Min(speed, 10))
	return 70 + 13*speed
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay.
		envelope := math.Exp(-t * 18)
		noise := g.rng.Float64()*2 - 1
		body := math.Sin(2 * math.Pi * g.freq * t)
		sample := envelope * (0.6*body + 0.25*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error {
	return nil
}

// fade applies a linear fade-out over the last release samples of a
// total-sample stream
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if remaining := f.total - f.pos; remaining < f.release {
			vol := math.Max(float64(remaining)/float64(f.release), 0)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream by a linear gain. A zero gain is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// ImpactSound is the finite sound played on a collision
func ImpactSound(sr beep.SampleRate, speed, gain float64) beep.Streamer {
	return newVolume(beep.Take(sr.N(impactDuration), NewImpactGenerator(sr, speed)), gain)
}

// BumpSound is the short blip played when the craft bounces off the map edge
func BumpSound(sr beep.SampleRate, gain float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, bumpFrequency)
	if err != nil {
		return nil, err
	}
	total := sr.N(bumpDuration)
	shaped := &fade{streamer: tone, total: total, release: total / 2}
	return newVolume(beep.Take(total, shaped), gain*0.3), nil
}

// ThrusterSound renders one second of rumble and loops it forever. The hum
// completes a whole number of cycles per second, so it loops without a click.
func ThrusterSound(sr beep.SampleRate, gain float64) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(time.Second), NewThrusterGenerator(sr)))
	return newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), gain*0.4)
}
