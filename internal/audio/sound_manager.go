package audio

import (
	"sync"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// cue is one short tone.
type cue struct {
	freq     float64
	duration time.Duration
}

var (
	playerShotCue = []cue{{880, 50 * time.Millisecond}}
	enemyShotCue  = []cue{{330, 40 * time.Millisecond}}
	alienCue      = []cue{{220, 80 * time.Millisecond}}
	playerHitCue  = []cue{{110, 250 * time.Millisecond}}
	wonCue        = []cue{{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}}
	lostCue       = []cue{{392, 120 * time.Millisecond}, {262, 120 * time.Millisecond}, {131, 300 * time.Millisecond}}
)

// SoundManager plays short cues for match events. Without Initialize (or
// when the audio device is missing) every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager создаёт звуковой менеджер
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize поднимает аудиосистему
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// Subscribe attaches the manager to the events it has cues for.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm,
		event.ProjectileFired,
		event.AlienDestroyed,
		event.PlayerHit,
		event.MatchWon,
		event.MatchLost,
	)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		if p, ok := e.Data.(component.Projectile); ok && p.Owner == component.OwnerEnemy {
			sm.play(enemyShotCue)
			return
		}
		sm.play(playerShotCue)
	case event.AlienDestroyed:
		sm.play(alienCue)
	case event.PlayerHit:
		sm.play(playerHitCue)
	case event.MatchWon:
		sm.play(wonCue)
	case event.MatchLost:
		sm.play(lostCue)
	}
}

func (sm *SoundManager) play(cues []cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamers := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		sine, err := generators.SineTone(sampleRate, c.freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(sampleRate.N(c.duration), sine))
	}
	if len(streamers) == 0 {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Seq(streamers...))
	speaker.Unlock()
	sm.played++
}

// Played returns how many cues were queued since Initialize.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
