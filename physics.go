package codewing

import "math"

// integrateBroken advances one broken particle by a single tick: gravity,
// drag, flutter, wind, position, spin and linear fade, in that order.
func integrateBroken(p *Particle, ph *BrokenPhysics, clock float64, wind *Wind) {
	p.VY += ph.Gravity
	p.VX *= ph.Friction
	p.VY *= ph.Friction
	if ph.FlutterStrength != 0 {
		p.VX += ph.FlutterStrength * math.Sin(clock*ph.FlutterRate+p.Rotation)
	}
	p.VX += wind.Force(p.RelX, p.RelY, clock)
	p.RelX += p.VX
	p.RelY += p.VY
	p.Rotation += p.RotationSpeed
	fade(p, ph.AlphaDecay)
}

// fade lowers alpha by decay, never below zero and never upward.
func fade(p *Particle, decay float64) {
	if !(decay > 0) {
		return
	}
	a := p.Alpha - decay
	if !(a > 0) {
		a = 0
	}
	p.Alpha = a
}

// swayOffset is the horizontal displacement from the anchor at clock.
func (s *Shape) swayOffset(clock float64) float64 {
	return s.SwayAmplitude * math.Cos(clock*s.SwayFrequency+s.SwayPhase)
}

// step advances the shape by one tick. Alive shapes rise and sway as a rigid
// body; broken shapes lose opacity while their particles fall independently.
func (s *Shape) step(clock, width float64, dt float32, cfg *SwarmConfig, wind *Wind) {
	s.lastClock = clock
	switch s.State {
	case Alive:
		s.BaseY -= s.RiseSpeed
		s.X = s.AnchorX*width + s.swayOffset(clock)
		if s.fade != nil {
			s.Opacity = s.fade.Update(dt)
			if s.fade.Done() {
				s.fade = nil
			}
		}
	case ShapeBroken:
		s.Opacity -= cfg.OpacityDecay
		if !(s.Opacity > 0) {
			s.Opacity = 0
		}
		for i := range s.Particles {
			integrateBroken(&s.Particles[i], &cfg.Physics, clock, wind)
		}
	}
}

// expired reports whether the shape can be dropped from the live set.
func (s *Shape) expired(margin float64) bool {
	if s.State == Alive {
		return s.BaseY < -margin
	}
	if s.Opacity <= 0 {
		return true
	}
	for i := range s.Particles {
		if s.Particles[i].Alpha > 0 {
			return false
		}
	}
	return true
}

// prune drops faded particles and those that fell past the bottom margin.
// Only meaningful once the shape is broken.
func (s *Shape) prune(height, margin float64) {
	if s.State != ShapeBroken {
		return
	}
	limit := height + margin
	s.Particles = compactParticles(s.Particles, func(p *Particle) bool {
		return p.Alpha > 0 && p.RelY <= limit
	})
}
