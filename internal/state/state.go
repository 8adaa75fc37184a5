// internal/state/state.go
package state

import (
	"go-sky-sparks/internal/event"
	"go-sky-sparks/pkg/render"
)

// Input is the slice of player input the states react to. Each backend
// implements it on top of its own event source.
type Input interface {
	PausePressed() bool
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in Input)
	Draw(ctx render.Context)
	Exit()
}

// StateMachine switches between states.
type StateMachine struct {
	current State
	events  *event.Dispatcher
}

// NewStateMachine creates a machine without an initial state. events may be
// nil.
func NewStateMachine(events *event.Dispatcher) *StateMachine {
	return &StateMachine{events: events}
}

func (sm *StateMachine) dispatch(eventType event.EventType) {
	if sm.events != nil {
		sm.events.Dispatch(event.Event{Type: eventType})
	}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(in Input) {
	if sm.current != nil {
		sm.current.Update(in)
	}
}

func (sm *StateMachine) Draw(ctx render.Context) {
	if sm.current != nil {
		sm.current.Draw(ctx)
	}
}
