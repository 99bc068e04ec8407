package codewing

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick counters and timings.
// Only timings are populated when Engine.debug is true.
type tickStats struct {
	updateTime      time.Duration
	drawTime        time.Duration
	spawned         int
	brokenShapes    int
	brokenParticles int
	drips           int
	skippedMoves    int
	prunedShapes    int
	prunedParticles int
}

// debugLogInterval is the number of ticks between stats lines.
const debugLogInterval = 60

// debugLog prints simulation stats to stderr. Event counters are printed
// whenever non-zero; the population summary every debugLogInterval ticks.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	st := &e.stats
	if st.brokenShapes+st.brokenParticles+st.drips > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[codewing] tick %d: broke %d shapes | %d particles | %d drips\n",
			e.ticks, st.brokenShapes, st.brokenParticles, st.drips)
	}
	if e.ticks%debugLogInterval != 0 {
		return
	}
	fieldN, dripN := 0, 0
	if e.field != nil {
		fieldN = e.field.Len()
	}
	if e.melt != nil {
		dripN = e.melt.Len()
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[codewing] update: %v | draw: %v | glyphs: %d | font switches: %d\n",
		st.updateTime, st.drawTime, e.renderer.Glyphs(), e.renderer.FontSwitches())
	_, _ = fmt.Fprintf(os.Stderr,
		"[codewing] shapes: %d | swarm particles: %d | field particles: %d | drips: %d | skipped moves: %d\n",
		e.swarm.Len(), e.swarm.ParticleCount(), fieldN, dripN, st.skippedMoves)
	debugCheckShapeCount(e.swarm)
}

// debugMaxShapes is the live shape count above which a warning is printed.
const debugMaxShapes = 200

// debugCheckShapeCount warns on stderr if the swarm grows past debugMaxShapes,
// which usually means MaxShapes is 0 and shapes are not leaving the surface.
func debugCheckShapeCount(sw *Swarm) {
	if n := sw.Len(); n > debugMaxShapes {
		_, _ = fmt.Fprintf(os.Stderr, "[codewing] warning: %d live shapes (threshold %d)\n",
			n, debugMaxShapes)
	}
}
