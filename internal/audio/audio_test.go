package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
)

type recorder struct {
	jumps, crashes, scores int
}

func (r *recorder) PlayJump()     { r.jumps++ }
func (r *recorder) PlayCrash()    { r.crashes++ }
func (r *recorder) PlayScore()    { r.scores++ }
func (r *recorder) StartAmbient() {}
func (r *recorder) StopAmbient()  {}
func (r *recorder) Close()        {}

func TestDispatch(t *testing.T) {
	r := &recorder{}
	Dispatch(r, []core.Event{
		{Kind: core.EventJump},
		{Kind: core.EventJump},
		{Kind: core.EventScored, Value: 1},
		{Kind: core.EventSceneEntered},
		{Kind: core.EventCrashed, Value: 1},
	})

	if r.jumps != 2 || r.scores != 1 || r.crashes != 1 {
		t.Errorf("Dispatch counts = %+v", *r)
	}

	// A nil player is ignored.
	Dispatch(nil, []core.Event{{Kind: core.EventJump}})
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayJump()
	p.PlayCrash()
	p.PlayScore()
	p.StartAmbient()
	p.StopAmbient()
	p.Close()
}

// TestSoundManagerWithoutInit verifies every call is a no-op before the
// speaker is opened.
func TestSoundManagerWithoutInit(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{}, nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound calls panicked without initialization: %v", r)
		}
	}()

	sm.PlayJump()
	sm.PlayCrash()
	sm.PlayScore()
	sm.StartAmbient()
	sm.StopAmbient()
	sm.Close()
}

func streamLen(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSynthesizedClipLengths(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		s    beep.Streamer
		want time.Duration
	}{
		{"jump", JumpSound(rate), 90 * time.Millisecond},
		{"crash", CrashSound(rate), 280 * time.Millisecond},
		{"score", ScoreSound(rate), 160 * time.Millisecond},
		{"ambient", AmbientClip(rate), 4 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := streamLen(tt.s), rate.N(tt.want); got != want {
				t.Errorf("length = %d samples, expected %d", got, want)
			}
		})
	}
}

func TestEnvelopeBounds(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(50, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	for i, smp := range buf {
		if smp[0] > 1 || smp[0] < -1 {
			t.Fatalf("sample %d out of range: %v", i, smp[0])
		}
	}
}

func TestLoadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, JumpSound(format.SampleRate), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	buf, err := LoadWAV(path)
	if err != nil {
		t.Fatalf("LoadWAV: %v", err)
	}
	if buf.Format().SampleRate != sampleRate {
		t.Errorf("rate = %v, expected %v", buf.Format().SampleRate, sampleRate)
	}
	// 90ms resampled to 44.1kHz, give or take the resampler's edge.
	want := sampleRate.N(90 * time.Millisecond)
	if got := buf.Len(); got < want-64 || got > want+64 {
		t.Errorf("Len() = %d, expected about %d", got, want)
	}
}

func TestLoadWAVErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadWAV(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWAV(junk); err == nil {
		t.Error("expected error for a non-WAV file")
	}
}
