package codewing

// HitCircle is a circular hit area in world coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle. A point at
// exactly Radius is a miss. Compares squared distances; no square root.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// shapeHitCircle returns the hit area of a shape: base radius scaled by the
// shape's scale, centred on its origin.
func shapeHitCircle(s *Shape, baseRadius float64) HitCircle {
	return HitCircle{CenterX: s.X, CenterY: s.BaseY, Radius: baseRadius * s.Scale}
}

// hitShapes breaks every alive shape whose hit circle contains (x, y) and
// calls onHit for each. Returns the number of shapes broken.
func (sw *Swarm) hitShapes(x, y float64, onHit func(*Shape)) int {
	n := 0
	for _, s := range sw.shapes {
		if s.State != Alive {
			continue
		}
		if !shapeHitCircle(s, sw.cfg.HitRadius).Contains(x, y) {
			continue
		}
		if s.shatter(sw.rng, sw.cfg.BreakImpulse) {
			n++
			if onHit != nil {
				onHit(s)
			}
		}
	}
	return n
}

// hitParticles breaks every attached field particle within the field's hit
// radius of (x, y), giving each an explosive impulse. Returns the count.
func (f *Field) hitParticles(x, y float64) int {
	area := HitCircle{CenterX: x, CenterY: y, Radius: f.cfg.HitRadius}
	n := 0
	for i := range f.particles {
		p := &f.particles[i]
		if p.State != Attached {
			continue
		}
		wx, wy := f.attachedPos(p)
		if !area.Contains(wx, wy) {
			continue
		}
		vx := centered(f.rng, f.cfg.ImpulseX)
		vy := f.cfg.ImpulseY.Random(f.rng)
		p.release(wx, wy, vx, vy)
		p.Rotation = f.rng.Float64()
		p.RotationSpeed = f.cfg.SpinSpeed
		n++
	}
	return n
}
