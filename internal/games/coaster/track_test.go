package coaster

import (
	"math"
	"testing"

	"github.com/blahos/funfair/internal/core"
)

func TestTrackEndpoints(t *testing.T) {
	tr := NewTrack()

	start, _ := tr.Evaluate(0)
	if start != tr.Station() {
		t.Errorf("Evaluate(0) should be the station, got %v vs %v", start, tr.Station())
	}

	end, _ := tr.Evaluate(1)
	pts := tr.Points()
	if end != pts[len(pts)-1] {
		t.Errorf("Evaluate(1) should be the last point, got %v vs %v", end, pts[len(pts)-1])
	}
}

func TestTrackEvaluateClamps(t *testing.T) {
	tr := NewTrack()

	lo, _ := tr.Evaluate(-3)
	zero, _ := tr.Evaluate(0)
	if lo != zero {
		t.Error("Parameters below 0 should clamp to the station")
	}

	hi, _ := tr.Evaluate(7)
	one, _ := tr.Evaluate(1)
	if hi != one {
		t.Error("Parameters above 1 should clamp to the track end")
	}
}

func TestTrackArcLengthParameterization(t *testing.T) {
	tr := NewTrack()

	// Equal parameter steps must cover equal arc lengths: walk the curve
	// in small steps and check each step's world distance is near the
	// expected slice of the total.
	const steps = 400
	want := tr.Total() / steps
	prev, _ := tr.Evaluate(0)
	for i := 1; i <= steps; i++ {
		p, _ := tr.Evaluate(float64(i) / steps)
		got := p.Sub(prev).Len()
		// Corners between polyline segments shorten the chord slightly.
		if got > want*1.01 || got < want*0.5 {
			t.Fatalf("Step %d covered %v, want about %v", i, got, want)
		}
		prev = p
	}
}

func TestTrackTangentIsUnit(t *testing.T) {
	tr := NewTrack()
	for i := 0; i <= 100; i++ {
		_, tan := tr.Evaluate(float64(i) / 100)
		if l := tan.Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("Tangent at %v has length %v, want 1", float64(i)/100, l)
		}
	}
}

func TestTrackStaysInView(t *testing.T) {
	tr := NewTrack()
	for _, p := range tr.Points() {
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Fatalf("Track point %v leaves NDC bounds", p)
		}
	}
}

func TestTrackHasLoop(t *testing.T) {
	tr := NewTrack()

	// The loop's top must rise above both loop entry points, i.e. some
	// mid-track point sits well above the segment heights around it.
	top := core.Vec2{Y: -2}
	for _, p := range tr.Points() {
		if p.Y > top.Y {
			top = p
		}
	}
	station := tr.Station()
	if top.Y < station.Y+0.5 {
		t.Errorf("Track should climb well above the station, top %v vs station %v", top, station)
	}
}

func TestTrackBuildIsDeterministic(t *testing.T) {
	a := NewTrack()
	b := NewTrack()
	if a.Total() != b.Total() {
		t.Errorf("Track builds should be identical, totals %v vs %v", a.Total(), b.Total())
	}
	pa, pb := a.Points(), b.Points()
	if len(pa) != len(pb) {
		t.Fatalf("Point counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("Point %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}
}
