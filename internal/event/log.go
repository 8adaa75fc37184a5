package event

import "github.com/rs/zerolog/log"

// LogListener writes every event it receives to the debug log.
func LogListener() Listener {
	return ListenerFunc(func(e Event) {
		log.Debug().Str("event", string(e.Type)).Interface("data", e.Data).Msg("event dispatched")
	})
}
