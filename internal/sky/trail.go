package sky

import (
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"
)

// Trail is a short-lived spark shed by a Particle. It only reads its parent,
// never writes to it.
type Trail struct {
	Size   float64
	X, Y   float64
	VX, VY float64
	Tick   int
	Life   int

	parent *Particle
}

// reset re-anchors the trail on the parent's current position.
func (t *Trail) reset() {
	o := t.parent.world.opts.Trails
	rng := t.parent.world.rng

	t.X = t.parent.X
	t.Y = t.parent.Y
	t.Size = t.parent.Size * utils.Jitter(rng, o.BaseMultiplier, o.AddedMultiplier)

	angle := t.parent.Angle + utils.Jitter(rng, o.BaseAngle, o.AddedAngle)
	t.VX, t.VY = utils.Polar(t.Size*o.SpeedMultiplier, angle)

	t.Tick = 0
	t.Life = int(utils.Jitter(rng, o.BaseLife, o.AddedLife))
}

func (t *Trail) step(ctx render.Context) {
	t.Tick++
	if t.Tick > t.Life {
		t.reset()
		return
	}

	t.X += t.VX
	t.Y += t.VY

	t.draw(ctx)
}

func (t *Trail) draw(ctx render.Context) {
	ctx.MoveTo(t.X, t.Y)
	ctx.Arc(t.X, t.Y, t.Radius(), 0, utils.Tau)
}

// Radius is the displayed radius: the trail shrinks linearly to zero over its
// life.
func (t *Trail) Radius() float64 {
	if t.Life <= 0 {
		return 0
	}
	return t.Size * (1 - float64(t.Tick)/float64(t.Life))
}
