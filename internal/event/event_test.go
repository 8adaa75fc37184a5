package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.Subscribe(Resized, ListenerFunc(func(e Event) {
		got = append(got, "first")
		assert.Equal(t, Size{Width: 3, Height: 4}, e.Data)
	}))
	d.Subscribe(Resized, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(Paused, ListenerFunc(func(e Event) { got = append(got, "paused") }))
	d.Subscribe(Resized, LogListener())

	d.Dispatch(Event{Type: Resized, Data: Size{Width: 3, Height: 4}})
	assert.Equal(t, []string{"first", "second"}, got)

	d.Dispatch(Event{Type: Resumed})
	assert.Equal(t, []string{"first", "second"}, got)

	d.Dispatch(Event{Type: Paused})
	assert.Equal(t, []string{"first", "second", "paused"}, got)
}
