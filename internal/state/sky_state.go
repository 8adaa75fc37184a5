package state

import (
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/pkg/render"

	"github.com/rs/zerolog/log"
)

var _ State = (*SkyState)(nil)

// SkyState runs the animation: every Draw advances the field by one frame.
type SkyState struct {
	sm    *StateMachine
	field *sky.Field
}

func NewSkyState(sm *StateMachine, field *sky.Field) *SkyState {
	return &SkyState{sm: sm, field: field}
}

func (s *SkyState) Enter() {
	log.Debug().Uint64("frame", s.field.Stats().Frames).Msg("animation running")
}

func (s *SkyState) Update(in Input) {
	if in.PausePressed() {
		s.sm.SetState(NewPauseState(s.sm, s))
		s.sm.dispatch(event.Paused)
	}
}

func (s *SkyState) Draw(ctx render.Context) {
	s.field.Frame(ctx)
}

func (s *SkyState) Exit() {}

func (s *SkyState) Field() *sky.Field {
	return s.field
}
