// cmd/sparks_raylib/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"go-sky-sparks/internal/app"
	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/logging"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/internal/state"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const indicatorRadius = 6

type raylibInput struct{}

func (raylibInput) PausePressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

// windowScheduler hands out a frame until the window is closed. raylib paces
// the loop itself inside EndDrawing.
func windowScheduler(ctx context.Context) error {
	if rl.WindowShouldClose() {
		return app.ErrStopped
	}
	return ctx.Err()
}

func run(ctx context.Context, opts config.Options, palette render.Palette) error {
	if opts.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(opts.Window.Width), int32(opts.Window.Height), opts.Window.Title+" | Space - pause")
	if !rl.IsWindowReady() {
		return errors.New("raylib window not ready")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	field := sky.NewField(opts, utils.NewPRNGService(opts.Seed), rl.GetScreenWidth(), rl.GetScreenHeight(), palette)
	events := event.NewDispatcher()
	events.Subscribe(event.Resized, field)
	events.Subscribe(event.Resized, event.LogListener())

	indicator := newPauseIndicator(float32(config.OverlayOffsetX+indicatorRadius), float32(config.OverlayOffsetY+3*indicatorRadius), indicatorRadius)
	events.Subscribe(event.Paused, indicator)
	events.Subscribe(event.Resumed, indicator)

	sm := state.NewStateMachine(events)
	sm.SetState(state.NewSkyState(sm, field))

	var drawCtx raylibContext
	err := app.Run(ctx, app.SchedulerFunc(windowScheduler), func() {
		if rl.IsWindowResized() {
			events.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}})
		}
		sm.Update(raylibInput{})

		rl.BeginDrawing()
		sm.Draw(&drawCtx)
		if opts.Debug {
			rl.DrawFPS(config.OverlayOffsetX, config.OverlayOffsetY)
			_, paused := sm.Current().(*state.PauseState)
			indicator.Draw(paused, palette)
		}
		rl.EndDrawing()
	})

	stats := field.Stats()
	log.Info().Uint64("frames", stats.Frames).Int("particles", stats.Particles).Int("trails", stats.Trails).Msg("raylib sparks stopped")
	return err
}

func main() {
	var configPath string
	var seed int64

	cmd := &cobra.Command{
		Use:          "sparks_raylib",
		Short:        "Falling sky-blue sparks in a raylib window",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := logging.Setup(opts.LogLevel, os.Stderr); err != nil {
				return err
			}
			bg, spark, err := opts.Palette()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			app.Guard("raylib", func() error {
				return run(ctx, opts, render.Palette{Background: bg, Spark: spark})
			})
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
