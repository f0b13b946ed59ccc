// Package audio plays the game's sounds through beep. Frontends hold a Player
// and feed it the events each simulation step reports.
package audio

import "github.com/vovakirdan/tui-bee/internal/core"

// Player is the sound surface the frontends use.
type Player interface {
	PlayJump()
	PlayCrash()
	PlayScore()
	StartAmbient()
	StopAmbient()
	Close()
}

// Nop is a Player that stays silent. It serves muted runs, SSH sessions
// and tests.
type Nop struct{}

func (Nop) PlayJump()     {}
func (Nop) PlayCrash()    {}
func (Nop) PlayScore()    {}
func (Nop) StartAmbient() {}
func (Nop) StopAmbient()  {}
func (Nop) Close()        {}

// Dispatch plays the sounds for one step's events.
func Dispatch(p Player, events []core.Event) {
	if p == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventJump:
			p.PlayJump()
		case core.EventScored:
			p.PlayScore()
		case core.EventCrashed:
			p.PlayCrash()
		}
	}
}
