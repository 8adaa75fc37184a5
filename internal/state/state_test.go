package state

import (
	"testing"

	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pressed bool

func (p pressed) PausePressed() bool { return bool(p) }

func newTestMachine() (*StateMachine, *sky.Field) {
	opts := config.Default()
	opts.Particles.Cap = 2
	palette := render.Palette{Background: config.BackgroundColor, Spark: config.SparkColor}
	field := sky.NewField(opts, utils.NewPRNGService(3), 100, 100, palette)

	sm := NewStateMachine(nil)
	sm.SetState(NewSkyState(sm, field))
	return sm, field
}

func TestSkyStateAdvancesField(t *testing.T) {
	sm, field := newTestMachine()

	var rec render.Recorder
	for i := 0; i < 10; i++ {
		sm.Update(pressed(false))
		sm.Draw(&rec)
	}

	assert.EqualValues(t, 10, field.Stats().Frames)
	assert.Equal(t, config.SparkColor, rec.Color)
}

func TestPauseFreezesAndResumes(t *testing.T) {
	sm, field := newTestMachine()
	running := sm.Current()

	var rec render.Recorder
	for i := 0; i < 50; i++ {
		sm.Draw(&rec)
	}

	sm.Update(pressed(true))
	require.IsType(t, &PauseState{}, sm.Current())

	before := append([]sky.Particle(nil), field.Particles()...)
	for i := 0; i < 5; i++ {
		sm.Update(pressed(false))
		sm.Draw(&rec)
	}

	assert.EqualValues(t, 50, field.Stats().Frames)
	assert.Equal(t, before, field.Particles())
	assert.Equal(t, render.DarkenColor(config.SparkColor), rec.Color)

	sm.Update(pressed(true))
	assert.Same(t, running, sm.Current())

	sm.Draw(&rec)
	assert.EqualValues(t, 51, field.Stats().Frames)
}

func TestEmptyMachineIsNoop(t *testing.T) {
	sm := NewStateMachine(nil)

	var rec render.Recorder
	sm.Update(pressed(true))
	sm.Draw(&rec)

	assert.Nil(t, sm.Current())
	assert.Zero(t, rec.Fills)
}

func TestPauseDispatchesEvents(t *testing.T) {
	_, field := newTestMachine()

	events := event.NewDispatcher()
	var got []event.EventType
	record := event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) })
	events.Subscribe(event.Paused, record)
	events.Subscribe(event.Resumed, record)

	sm := NewStateMachine(events)
	sm.SetState(NewSkyState(sm, field))

	sm.Update(pressed(false))
	sm.Update(pressed(true))
	sm.Update(pressed(true))

	assert.Equal(t, []event.EventType{event.Paused, event.Resumed}, got)
}
