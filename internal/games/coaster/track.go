// Package coaster implements a rollercoaster ride simulation.
// Passengers board at the station, get strapped in by clicking their
// seats, and ride a fixed track with a climb, a dip and a vertical loop.
// Riders can get sick mid-ride, forcing a stop and an early return.
package coaster

import (
	"math"
	"sort"

	"github.com/blahos/funfair/internal/core"
)

// Samples per track section. Higher counts only smooth the polyline;
// the ride integrates over arc length, not sample index.
const (
	rampSamples = 48
	loopSamples = 72
)

// trackOffset shifts the whole layout within the viewport.
var trackOffset = core.Vec2{X: 0, Y: -0.05}

// Track is an immutable arc-length parameterized curve. It is built once
// and then only evaluated, so rides and tests may share one instance.
type Track struct {
	points []core.Vec2
	arc    []float64 // prefix arc lengths, arc[i] = length up to points[i]
	total  float64
}

// NewTrack builds the standard ride layout: station run-in, a smoothstep
// climb and dip, a vertical loop with horizontal drift, then a descent
// back to station height.
func NewTrack() *Track {
	t := &Track{}

	t.appendRamp(core.Vec2{X: -0.92, Y: -0.50}, core.Vec2{X: -0.60, Y: -0.50})
	t.appendRamp(core.Vec2{X: -0.60, Y: -0.50}, core.Vec2{X: -0.25, Y: 0.30})
	t.appendRamp(core.Vec2{X: -0.25, Y: 0.30}, core.Vec2{X: 0.02, Y: -0.02})
	t.appendLoop(core.Vec2{X: 0.02, Y: 0.20}, 0.22, 0.10)
	t.appendRamp(core.Vec2{X: 0.12, Y: -0.02}, core.Vec2{X: 0.55, Y: -0.45})
	t.appendRamp(core.Vec2{X: 0.55, Y: -0.45}, core.Vec2{X: 0.90, Y: -0.45})

	for i := range t.points {
		t.points[i] = t.points[i].Add(trackOffset)
	}
	t.buildArcTable()
	return t
}

// appendRamp samples a section from a to b with a smoothstep height
// profile: x advances linearly while y eases between the endpoints.
func (t *Track) appendRamp(a, b core.Vec2) {
	start := 0
	if len(t.points) > 0 {
		start = 1 // the previous section already emitted this point
	}
	for i := start; i <= rampSamples; i++ {
		u := float64(i) / float64(rampSamples)
		t.points = append(t.points, core.Vec2{
			X: core.Lerp(a.X, b.X, u),
			Y: core.Lerp(a.Y, b.Y, core.SmoothStep(u)),
		})
	}
}

// appendLoop samples a full vertical circle around center, drifting
// horizontally by drift over the revolution so entry and exit differ.
// The loop starts and ends at the circle's bottom.
func (t *Track) appendLoop(center core.Vec2, radius, drift float64) {
	for i := 1; i <= loopSamples; i++ {
		u := float64(i) / float64(loopSamples)
		// Bottom of the circle, sweeping counter-clockwise.
		dir := core.Vec2{X: 0, Y: -radius}.Rotated(u * 2 * math.Pi)
		p := center.Add(dir)
		p.X += drift * u
		t.points = append(t.points, p)
	}
}

// buildArcTable computes prefix arc lengths for Evaluate.
func (t *Track) buildArcTable() {
	t.arc = make([]float64, len(t.points))
	for i := 1; i < len(t.points); i++ {
		t.arc[i] = t.arc[i-1] + t.points[i].Sub(t.points[i-1]).Len()
	}
	t.total = t.arc[len(t.arc)-1]
	if t.total < 1e-9 {
		t.total = 1e-9
	}
}

// Total returns the track's arc length in world units.
func (t *Track) Total() float64 {
	return t.total
}

// Station returns the boarding position at the start of the track.
func (t *Track) Station() core.Vec2 {
	return t.points[0]
}

// Points exposes the sampled polyline for rendering.
func (t *Track) Points() []core.Vec2 {
	return t.points
}

// Evaluate maps a normalized parameter in [0, 1] to a position on the
// track and the unit tangent there. The parameter is proportional to arc
// length, so constant parameter speed means constant world speed.
func (t *Track) Evaluate(param float64) (core.Vec2, core.Vec2) {
	param = core.ClampF(param, 0, 1)
	if param >= 1 {
		n := len(t.points)
		return t.points[n-1], t.points[n-1].Sub(t.points[n-2]).Normalized()
	}
	target := param * t.total

	i := sort.SearchFloat64s(t.arc, target)
	if i <= 0 {
		i = 1
	}
	if i >= len(t.points) {
		i = len(t.points) - 1
	}

	segLen := t.arc[i] - t.arc[i-1]
	u := 0.0
	if segLen > 0 {
		u = (target - t.arc[i-1]) / segLen
	}
	a, b := t.points[i-1], t.points[i]
	pos := core.Vec2{
		X: core.Lerp(a.X, b.X, u),
		Y: core.Lerp(a.Y, b.Y, u),
	}
	return pos, b.Sub(a).Normalized()
}
