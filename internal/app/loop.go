// Package app drives frames outside of ebiten: an explicit loop that waits on
// an injected scheduler between frames and stops on context cancellation.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// ErrStopped is returned by a Scheduler when the host stops issuing frames,
// e.g. the window was closed.
var ErrStopped = errors.New("frame scheduler stopped")

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

func (f SchedulerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// RateScheduler paces frames at a fixed rate.
type RateScheduler struct {
	limiter *rate.Limiter
}

func NewRateScheduler(fps int) *RateScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &RateScheduler{
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(fps)), 1),
	}
}

func (s *RateScheduler) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

// Run calls frame once per scheduled tick until ctx is done or the scheduler
// stops. Both are a normal shutdown and yield nil.
func Run(ctx context.Context, sched Scheduler, frame func()) error {
	for {
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, ErrStopped) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for frame: %w", err)
		}
		frame()
	}
}
