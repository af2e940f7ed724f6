package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-gravflight/pkg/event"
	"github.com/opd-ai/go-gravflight/pkg/logging"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the thruster hum and the collision and edge sounds.
// Until Initialize succeeds every method is a no-op, so a muted or
// device-less session runs unchanged.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thruster    *beep.Ctrl
	gain        float64
	initialized bool
	device      bool
	subs        []*event.Subscription
	logger      *logging.Logger
	ctx         context.Context
}

// NewSoundManager creates a sound manager. gain scales every sound; 1 is
// full volume.
func NewSoundManager(ctx context.Context, logger *logging.Logger, gain float64) *SoundManager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		gain:   gain,
		logger: logger.With("component", "audio"),
		ctx:    ctx,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return logging.WrapError(err, "failed to initialize speaker")
	}

	speaker.Play(sm.mixer)
	sm.device = true
	sm.start()
	sm.logger.Info(sm.ctx, "audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// start adds the paused thruster loop to the mixer. Callers hold mu.
func (sm *SoundManager) start() {
	sm.thruster = &beep.Ctrl{Streamer: ThrusterSound(sampleRate, sm.gain), Paused: true}
	sm.mixer.Add(sm.thruster)
	sm.initialized = true
}

// Enabled reports whether sounds are being played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetThrust starts or pauses the thruster hum
func (sm *SoundManager) SetThrust(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.thruster.Paused == !on {
		return
	}

	speaker.Lock()
	sm.thruster.Paused = !on
	speaker.Unlock()
}

// PlayImpact plays a collision thud for a craft moving at speed
func (sm *SoundManager) PlayImpact(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(ImpactSound(sampleRate, speed, sm.gain))
}

// PlayBump plays the map-edge bounce blip
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := BumpSound(sampleRate, sm.gain)
	if err != nil {
		sm.logger.Warn(sm.ctx, "failed to build bump sound", "error", err)
		return
	}
	sm.play(s)
}

// play adds a finite stream to the mixer, which drops it once drained
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Subscribe plays sounds for contact and boundary events on bus
func (sm *SoundManager) Subscribe(bus *event.Bus) {
	onContact := func(e event.Event) {
		if contact, ok := e.(*event.ContactEvent); ok {
			sm.PlayImpact(contact.Speed)
		}
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.subs = append(sm.subs,
		bus.Subscribe(event.WellContact, onContact),
		bus.Subscribe(event.BarrierContact, onContact),
		bus.Subscribe(event.BoundaryReflection, func(event.Event) { sm.PlayBump() }),
	)
}

// Close stops all sounds, cancels subscriptions and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, sub := range sm.subs {
		sub.Cancel()
	}
	sm.subs = nil

	if !sm.initialized {
		return
	}

	if sm.device {
		speaker.Clear()
		speaker.Close()
		sm.device = false
	}
	sm.mixer.Clear()
	sm.initialized = false
	sm.logger.Debug(sm.ctx, "audio closed")
}
