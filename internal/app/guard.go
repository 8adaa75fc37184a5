package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Guard runs start and turns any failure, panics included, into a logged
// warning. The effect is decorative: when no surface can be obtained it simply
// does not run, and the process exits cleanly.
func Guard(name string, start func() error) (started bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("backend", name).Str("panic", fmt.Sprint(r)).Msg("sky sparks disabled")
			started = false
		}
	}()

	if err := start(); err != nil {
		log.Error().Err(err).Str("backend", name).Msg("sky sparks disabled")
		return false
	}
	return true
}
