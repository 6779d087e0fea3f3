package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointToPosition(t *testing.T) {
	surface := Rect{Left: 100, Top: 50, Width: 800, Height: 400}

	pos := PointToPosition(Point{X: 500, Y: 250}, surface)
	require.InDelta(t, 50.0, pos.XPct, 1e-9)
	require.InDelta(t, 50.0, pos.YPct, 1e-9)

	pos = PointToPosition(Point{X: 100, Y: 50}, surface)
	require.Equal(t, Position{}, pos)

	// Outside the surface clamps rather than escaping the range.
	pos = PointToPosition(Point{X: 2000, Y: -30}, surface)
	require.Equal(t, Position{XPct: 100, YPct: 0}, pos)
}

func TestPointToPosition_DegenerateSurface(t *testing.T) {
	require.Equal(t, Position{}, PointToPosition(Point{X: 10, Y: 10}, Rect{}))
	require.Equal(t, Position{}, PointToPosition(Point{X: 10, Y: 10}, Rect{Width: 100}))
}

func TestDrag_Move(t *testing.T) {
	surface := Rect{Left: 0, Top: 0, Width: 1000, Height: 500}
	d := StartDrag(Point{X: 300, Y: 100}, Position{XPct: 30, YPct: 20}, surface)

	pos := d.Move(Point{X: 400, Y: 150})
	require.InDelta(t, 40.0, pos.XPct, 1e-9)
	require.InDelta(t, 30.0, pos.YPct, 1e-9)

	pos = d.Move(Point{X: 250, Y: 100})
	require.InDelta(t, 25.0, pos.XPct, 1e-9)
	require.InDelta(t, 20.0, pos.YPct, 1e-9)

	require.Equal(t, pos, d.End())
}

func TestDrag_ClampsToSurface(t *testing.T) {
	surface := Rect{Width: 100, Height: 100}
	d := StartDrag(Point{X: 50, Y: 50}, Position{XPct: 90, YPct: 10}, surface)

	pos := d.Move(Point{X: 500, Y: -500})
	require.Equal(t, Position{XPct: 100, YPct: 0}, pos)
}

func TestDrag_DegenerateSurfaceHoldsPosition(t *testing.T) {
	d := StartDrag(Point{X: 10, Y: 10}, Position{XPct: 42, YPct: 7}, Rect{})

	pos := d.Move(Point{X: 900, Y: 900})
	require.Equal(t, Position{XPct: 42, YPct: 7}, pos)
	require.Equal(t, Position{XPct: 42, YPct: 7}, d.End())
}
