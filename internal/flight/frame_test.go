package flight

import (
	"math"
	"testing"

	"github.com/san-kum/flightdyn/internal/geom"
)

func TestFrameRoundTrip(t *testing.T) {
	orientations := []Orientation{
		{0, 0, 0},
		{0.3, 0, 0},
		{0, 1.2, 0},
		{0, 0, -0.7},
		{0.5, -1.1, 2.0},
		{-1.4, 3.0, -2.9},
		{math.Pi / 2, -math.Pi / 2, math.Pi},
	}
	vectors := []geom.Vec3{
		{X: 0, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 12.5, Y: -3.7, Z: 88.1},
		{X: -0.001, Y: 250, Z: -0.5},
	}

	for _, o := range orientations {
		for _, v := range vectors {
			got := o.WorldToBody(o.BodyToWorld(v))
			if got.Sub(v).Length() > 1e-4 {
				t.Errorf("round trip failed for o=%+v v=%+v: got %+v", o, v, got)
			}

			got = o.BodyToWorld(o.WorldToBody(v))
			if got.Sub(v).Length() > 1e-4 {
				t.Errorf("reverse round trip failed for o=%+v v=%+v: got %+v", o, v, got)
			}
		}
	}
}

func TestBodyForwardAtHeading(t *testing.T) {
	// Body forward (-Z) at yaw=h points along (-sin h, 0, -cos h).
	for _, h := range []float64{0, 0.5, -1.2, math.Pi / 2} {
		o := Orientation{Yaw: h}
		fwd := o.BodyToWorld(geom.Vec3{Z: -1})
		want := geom.Vec3{X: -math.Sin(h), Z: -math.Cos(h)}
		if fwd.Sub(want).Length() > 1e-9 {
			t.Errorf("heading %f: forward %+v, want %+v", h, fwd, want)
		}
	}
}

func TestBodyUpAtPitch(t *testing.T) {
	// Positive pitch raises the nose, so body up tilts aft (+Z).
	o := Orientation{Pitch: 0.4}
	up := o.BodyToWorld(geom.Vec3{Y: 1})
	nose := o.BodyToWorld(geom.Vec3{Z: -1})
	if nose.Y <= 0 {
		t.Errorf("positive pitch should raise the nose, got %+v", nose)
	}
	if up.Z <= 0 {
		t.Errorf("positive pitch should tilt up aft, got %+v", up)
	}
	if up.Y <= 0 {
		t.Errorf("up vector lost its vertical component: %+v", up)
	}
}

func TestTransformMatrixTranslation(t *testing.T) {
	pos := geom.Vec3{X: 10, Y: 200, Z: -30}
	m := Matrix(pos, Orientation{Pitch: 0.2, Yaw: 1.0, Roll: -0.3})

	// Origin maps to the aircraft position.
	got := m.Apply(geom.Vec3{})
	if got.Sub(pos).Length() > 1e-9 {
		t.Errorf("matrix origin %+v, want %+v", got, pos)
	}
}

func TestTransformMatrixMatchesBodyToWorld(t *testing.T) {
	o := Orientation{Pitch: 0.3, Yaw: -0.8, Roll: 1.1}
	pos := geom.Vec3{X: 5, Y: 50, Z: -5}
	m := Matrix(pos, o)

	v := geom.Vec3{X: 1.5, Y: -2.0, Z: 3.0}
	got := m.Apply(v)
	want := o.BodyToWorld(v).Add(pos)
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("matrix disagrees with BodyToWorld: got %+v want %+v", got, want)
	}
}
