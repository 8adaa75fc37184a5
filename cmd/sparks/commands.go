package main

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sky-sparks/internal/app"
	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/logging"
	"go-sky-sparks/internal/sky"
	"go-sky-sparks/internal/term"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	seed       int64
	fps        int
	width      int
	height     int
	debug      bool
	logLevel   string
	logFile    string
	cpuProfile string
	pprofAddr  string
	frames     int
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:          "sparks",
		Short:        "Falling sky-blue sparks with fading trails",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, palette, stop, err := prepare(cmd, f, os.Stderr)
			if err != nil {
				return err
			}
			defer stop()

			app.Guard("window", func() error {
				return runWindow(opts, palette)
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to a TOML config file")
	pf.Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	pf.IntVar(&f.fps, "fps", config.TargetFPS, "frames per second")
	pf.IntVar(&f.width, "width", config.ScreenWidth, "surface width in pixels")
	pf.IntVar(&f.height, "height", config.ScreenHeight, "surface height in pixels")
	pf.BoolVar(&f.debug, "debug", false, "show the stats overlay")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error, none")
	pf.StringVar(&f.cpuProfile, "cpuprofile", "", "write a CPU profile into this directory")
	pf.StringVar(&f.pprofAddr, "pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")

	root.AddCommand(newTermCommand(f), newSimulateCommand(f))
	return root
}

func newTermCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render the sparks in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr belongs to the screen while the animation runs
			logOut, err := logging.OpenFile(f.logFile)
			if err != nil {
				return err
			}
			defer logOut.Close()

			opts, palette, stop, err := prepare(cmd, f, logOut)
			if err != nil {
				return err
			}
			defer stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			app.Guard("terminal", func() error {
				screen, err := tcell.NewScreen()
				if err != nil {
					return fmt.Errorf("create screen: %w", err)
				}
				if err := screen.Init(); err != nil {
					return fmt.Errorf("init screen: %w", err)
				}
				return term.Run(ctx, screen, opts, utils.NewPRNGService(opts.Seed), palette)
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "append logs to this file instead of discarding them")
	return cmd
}

func newSimulateCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Step the field headless and report what would have been drawn",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, palette, stop, err := prepare(cmd, f, os.Stderr)
			if err != nil {
				return err
			}
			defer stop()

			return simulate(cmd.OutOrStdout(), opts, palette, f.frames)
		},
	}
	cmd.Flags().IntVarP(&f.frames, "frames", "n", 600, "number of frames to step")
	return cmd
}

func simulate(out io.Writer, opts config.Options, palette render.Palette, frames int) error {
	if frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", frames)
	}

	field := sky.NewField(opts, utils.NewPRNGService(opts.Seed), opts.Window.Width, opts.Window.Height, palette)

	var rec render.Recorder
	start := time.Now()
	for i := 0; i < frames; i++ {
		field.Frame(&rec)
	}
	elapsed := time.Since(start)

	stats := field.Stats()
	log.Info().
		Uint64("frames", stats.Frames).
		Int("particles", stats.Particles).
		Int("trails", stats.Trails).
		Int("arcs", rec.Arcs).
		Dur("elapsed", elapsed).
		Msg("simulation finished")

	_, err := fmt.Fprintf(out, "frames=%d particles=%d/%d trails=%d arcs=%d fills=%d last=%d\n",
		stats.Frames, stats.Particles, stats.Cap, stats.Trails, rec.Arcs, rec.Fills, len(rec.Filled))
	return err
}

// prepare loads and validates the options, applies flag overrides and starts
// logging and profiling. The returned stop func flushes the profile.
func prepare(cmd *cobra.Command, f *flags, logOut io.Writer) (config.Options, render.Palette, func(), error) {
	noop := func() {}

	opts, err := loadOptions(cmd, f)
	if err != nil {
		return opts, render.Palette{}, noop, err
	}
	if err := logging.Setup(opts.LogLevel, logOut); err != nil {
		return opts, render.Palette{}, noop, err
	}

	bg, spark, err := opts.Palette()
	if err != nil {
		return opts, render.Palette{}, noop, err
	}

	if f.pprofAddr != "" {
		go func() {
			log.Warn().Err(http.ListenAndServe(f.pprofAddr, nil)).Msg("pprof listener stopped")
		}()
	}

	stop := noop
	if f.cpuProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(f.cpuProfile), profile.NoShutdownHook, profile.Quiet)
		stop = p.Stop
	}

	return opts, render.Palette{Background: bg, Spark: spark}, stop, nil
}

// loadOptions reads the config file and lets explicitly set flags win.
func loadOptions(cmd *cobra.Command, f *flags) (config.Options, error) {
	opts, err := config.Load(f.configPath)
	if err != nil {
		return opts, err
	}

	flagSet := cmd.Flags()
	if flagSet.Changed("seed") {
		opts.Seed = f.seed
	}
	if flagSet.Changed("fps") {
		opts.FPS = f.fps
	}
	if flagSet.Changed("width") {
		opts.Window.Width = f.width
	}
	if flagSet.Changed("height") {
		opts.Window.Height = f.height
	}
	if flagSet.Changed("debug") {
		opts.Debug = f.debug
	}
	if flagSet.Changed("log-level") {
		opts.LogLevel = f.logLevel
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config: %w", err)
	}
	return opts, nil
}
