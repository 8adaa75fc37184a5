// cmd/sparks/main.go
package main

import (
	"os"

	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/internal/state"
	"go-sky-sparks/internal/ui"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

type ebitenInput struct{}

func (ebitenInput) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// AppGame adapts the state machine to ebiten.Game. The field advances in
// Draw, once per display refresh.
type AppGame struct {
	stateMachine *state.StateMachine
	field        *sky.Field
	events       *event.Dispatcher
	ctx          *render.EbitenContext
	overlay      *ui.StatsOverlay
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.stateMachine.Update(ebitenInput{})
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.ctx.SetTarget(screen)
	a.stateMachine.Draw(a.ctx)

	if a.overlay != nil {
		_, paused := a.stateMachine.Current().(*state.PauseState)
		a.overlay.Draw(screen, a.field.Stats(), ebiten.ActualFPS(), paused)
	}
}

// Layout follows the window: the surface is always as big as the window and
// the field learns about the new size before the next Draw.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := a.field.Size(); w != outsideWidth || h != outsideHeight {
		a.events.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: outsideWidth, Height: outsideHeight}})
	}
	return outsideWidth, outsideHeight
}

func newAppGame(opts config.Options, palette render.Palette) *AppGame {
	field := sky.NewField(opts, utils.NewPRNGService(opts.Seed), opts.Window.Width, opts.Window.Height, palette)
	events := event.NewDispatcher()
	events.Subscribe(event.Resized, field)
	for _, t := range []event.EventType{event.Resized, event.Paused, event.Resumed} {
		events.Subscribe(t, event.LogListener())
	}

	sm := state.NewStateMachine(events)
	sm.SetState(state.NewSkyState(sm, field))

	game := &AppGame{
		stateMachine: sm,
		field:        field,
		events:       events,
		ctx:          render.NewEbitenContext(),
	}
	if opts.Debug {
		game.overlay = ui.NewStatsOverlay(config.OverlayOffsetX, config.OverlayOffsetY)
	}
	return game
}

func runWindow(opts config.Options, palette render.Palette) error {
	game := newAppGame(opts, palette)

	ebiten.SetWindowSize(opts.Window.Width, opts.Window.Height)
	ebiten.SetWindowTitle(opts.Window.Title)
	if opts.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(opts.FPS)

	log.Info().
		Int("width", opts.Window.Width).
		Int("height", opts.Window.Height).
		Int("cap", game.field.Stats().Cap).
		Msg("window sparks started")

	err := ebiten.RunGame(game)

	stats := game.field.Stats()
	log.Info().Uint64("frames", stats.Frames).Int("particles", stats.Particles).Int("trails", stats.Trails).Msg("window sparks stopped")
	return err
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
