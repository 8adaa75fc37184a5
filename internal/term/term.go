// Package term runs the sparks inside a character terminal. Each cell shows
// two dots of the field using the upper half block glyph.
package term

import (
	"context"
	"image/color"

	"go-sky-sparks/internal/app"
	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/internal/state"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const upperHalfBlock = '▀'

type input struct {
	pause bool
}

func (in *input) PausePressed() bool {
	p := in.pause
	in.pause = false
	return p
}

type runner struct {
	screen tcell.Screen
	cells  *render.Cells
	field  *sky.Field
	sm     *state.StateMachine
	events *event.Dispatcher
	in     input
	quit   func()
}

func newRunner(screen tcell.Screen, opts config.Options, rng utils.Source, palette render.Palette, quit func()) *runner {
	cols, rows := screen.Size()
	cells := render.NewCells(cols, rows, config.TermDotSize)
	width, height := cells.PixelSize()

	field := sky.NewField(opts, rng, width, height, palette)
	events := event.NewDispatcher()
	events.Subscribe(event.Resized, field)
	for _, t := range []event.EventType{event.Resized, event.Paused, event.Resumed} {
		events.Subscribe(t, event.LogListener())
	}

	sm := state.NewStateMachine(events)
	sm.SetState(state.NewSkyState(sm, field))

	return &runner{
		screen: screen,
		cells:  cells,
		field:  field,
		sm:     sm,
		events: events,
		quit:   quit,
	}
}

// Run takes over an initialized screen until ctx is done or the user quits
// with q, Esc or Ctrl-C. The screen is finalized before Run returns.
func Run(ctx context.Context, screen tcell.Screen, opts config.Options, rng utils.Source, palette render.Palette) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newRunner(screen, opts, rng, palette, cancel)
	log.Info().
		Int("cols", r.cells.Cols).
		Int("rows", r.cells.Rows).
		Int("cap", r.field.Stats().Cap).
		Msg("terminal sparks started")

	events := make(chan tcell.Event, 16)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			// returns nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		return app.Run(gctx, app.NewRateScheduler(opts.FPS), func() {
		drain:
			for {
				select {
				case ev := <-events:
					r.handle(ev)
				default:
					break drain
				}
			}
			r.frame()
		})
	})

	err := g.Wait()

	stats := r.field.Stats()
	log.Info().
		Uint64("frames", stats.Frames).
		Int("particles", stats.Particles).
		Int("trails", stats.Trails).
		Msg("terminal sparks stopped")
	return err
}

func (r *runner) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			r.quit()
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			r.in.pause = true
		}
	case *tcell.EventResize:
		r.resize()
	}
}

func (r *runner) resize() {
	r.screen.Sync()
	cols, rows := r.screen.Size()
	r.cells.Resize(cols, rows)
	width, height := r.cells.PixelSize()
	r.events.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: width, Height: height}})
}

func (r *runner) frame() {
	r.sm.Update(&r.in)
	r.sm.Draw(r.cells)
	r.flush()
}

func (r *runner) flush() {
	for row := 0; row < r.cells.Rows; row++ {
		for col := 0; col < r.cells.Cols; col++ {
			top, bottom := r.cells.Cell(col, row)
			if top == bottom {
				r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(toTcell(top)))
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			r.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
	r.screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
