package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-bee/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays sounds through a beep mixer on the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	volume      *effects.Volume
	jump        *beep.Buffer // nil means synthesized
	ambient     *beep.Buffer
	ambientCtrl *beep.Ctrl
	initialized bool
}

var _ Player = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		logger: logger,
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: cfg.Volume},
	}
}

// Initialize opens the speaker and loads the configured clips. It is safe
// to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	sm.jump = sm.loadClip("jump", sm.cfg.JumpWAV)
	sm.ambient = sm.loadClip("ambient", sm.cfg.AmbientWAV)
	if sm.ambient == nil {
		sm.ambient = bufferOf(AmbientClip(sampleRate))
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	sm.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// loadClip reads an optional WAV override, logging and ignoring failures.
func (sm *SoundManager) loadClip(name, path string) *beep.Buffer {
	if path == "" {
		return nil
	}
	buf, err := LoadWAV(path)
	if err != nil {
		sm.logger.Warn("using synthesized sound", "clip", name, "err", err)
		return nil
	}
	sm.logger.Debug("loaded clip", "clip", name, "path", path)
	return buf
}

// play adds s to the mixer.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayJump plays the flap sound.
func (sm *SoundManager) PlayJump() {
	if sm.jump != nil {
		sm.play(sm.jump.Streamer(0, sm.jump.Len()))
		return
	}
	sm.play(JumpSound(sampleRate))
}

// PlayCrash plays the game over buzz.
func (sm *SoundManager) PlayCrash() {
	sm.play(CrashSound(sampleRate))
}

// PlayScore plays the point chime.
func (sm *SoundManager) PlayScore() {
	sm.play(ScoreSound(sampleRate))
}

// StartAmbient starts the looping background track unless it is playing.
func (sm *SoundManager) StartAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.ambient == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.ambientCtrl != nil {
		sm.ambientCtrl.Paused = false
		return
	}
	loop := beep.Loop(-1, sm.ambient.Streamer(0, sm.ambient.Len()))
	sm.ambientCtrl = &beep.Ctrl{Streamer: loop}
	sm.mixer.Add(sm.ambientCtrl)
}

// StopAmbient pauses the background track.
func (sm *SoundManager) StopAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ambientCtrl == nil {
		return
	}
	speaker.Lock()
	sm.ambientCtrl.Paused = true
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.ambientCtrl = nil
	sm.initialized = false
}

// LoadWAV decodes a WAV file into memory at the mixer's sample rate.
func LoadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", path)
	}
	return buf, nil
}

// bufferOf renders a finite streamer into memory.
func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
