package sky

import (
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"
)

// Particle is one falling spark. It owns its trails; the trail slice is
// allocated with the trail cap up front and only ever grows up to it, so the
// particle never moves in memory while trails point back at it.
type Particle struct {
	Size   float64
	X, Y   float64
	VX, VY float64
	Angle  float64

	world  *world
	trails []Trail
}

func newParticle(w *world) Particle {
	return Particle{
		world:  w,
		trails: make([]Trail, 0, w.opts.Trails.Cap),
	}
}

// reset re-rolls size, position and velocity. The trails are kept and
// re-anchor themselves when they expire.
func (p *Particle) reset() {
	o := p.world.opts.Particles
	rng := p.world.rng

	p.Size = utils.Jitter(rng, o.BaseSize, o.AddedSize)
	p.X = rng.Float64() * p.world.width
	p.Y = -p.Size

	p.Angle = utils.Jitter(rng, o.BaseAngle, o.AddedAngle)
	p.VX, p.VY = utils.Polar(p.Size*o.SpeedMultiplier, p.Angle)
}

func (p *Particle) step(ctx render.Context) {
	trails := p.world.opts.Trails
	if len(p.trails) < trails.Cap && p.world.rng.Float64() < trails.SpawnChance {
		p.trails = append(p.trails, Trail{parent: p})
		p.trails[len(p.trails)-1].reset()
	}

	for i := range p.trails {
		p.trails[i].step(ctx)
	}

	p.X += p.VX
	p.Y += p.VY

	width, height := p.world.width, p.world.height
	if p.X < -p.Size {
		p.X = width + p.Size
	} else if p.X > width+p.Size {
		p.X = -p.Size
	}

	if p.Y > height+p.Size {
		p.reset()
	}

	p.draw(ctx)
}

func (p *Particle) draw(ctx render.Context) {
	ctx.MoveTo(p.X, p.Y)
	ctx.Arc(p.X, p.Y, p.Size, 0, utils.Tau)
}

// Trails returns the particle's trails in insertion order. The slice is
// shared with the particle and must not be modified.
func (p *Particle) Trails() []Trail {
	return p.trails
}
