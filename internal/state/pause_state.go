// internal/state/pause_state.go
package state

import (
	"go-sky-sparks/internal/event"
	"go-sky-sparks/pkg/render"

	"github.com/rs/zerolog/log"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the field and repaints it dimmed until unpaused.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SkyState
}

func NewPauseState(sm *StateMachine, prevState *SkyState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	log.Debug().Uint64("frame", s.previousState.field.Stats().Frames).Msg("animation paused")
}

func (s *PauseState) Update(in Input) {
	if in.PausePressed() {
		s.stateMachine.SetState(s.previousState)
		s.stateMachine.dispatch(event.Resumed)
	}
}

func (s *PauseState) Draw(ctx render.Context) {
	field := s.previousState.field
	field.Paint(ctx, field.Palette().Dimmed())
}

func (s *PauseState) Exit() {}
