package client

import "github.com/easelhq/easel/api"

// Point is a pixel coordinate in viewport space.
type Point struct {
	X float64
	Y float64
}

// Rect is a pixel-space bounding box of the annotation surface.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Position is a percentage coordinate on the annotation surface. Both axes
// are always within [0,100], so stored positions survive any resize of the
// surface.
type Position struct {
	XPct float64
	YPct float64
}

// PointToPosition converts a raw pointer location to a surface position,
// used when placing a new item at the click point.
func PointToPosition(p Point, surface Rect) Position {
	if surface.Width <= 0 || surface.Height <= 0 {
		return Position{}
	}
	return Position{
		XPct: api.ClampPct((p.X - surface.Left) / surface.Width * 100),
		YPct: api.ClampPct((p.Y - surface.Top) / surface.Height * 100),
	}
}

// Drag tracks one in-progress drag. The surface rect is captured once at
// drag start; every move converts the pixel delta against that cached rect,
// so mid-drag viewport changes cannot skew the item.
type Drag struct {
	surface Rect
	origin  Point
	start   Position
	last    Position
}

// StartDrag begins a drag of an item currently at start, grabbed at the
// pointer location origin.
func StartDrag(origin Point, start Position, surface Rect) *Drag {
	return &Drag{
		surface: surface,
		origin:  origin,
		start:   start,
		last:    start,
	}
}

// Move converts the current pointer location into a new clamped position.
// On a degenerate surface the item holds its last position.
func (d *Drag) Move(p Point) Position {
	if d.surface.Width <= 0 || d.surface.Height <= 0 {
		return d.last
	}
	dx := (p.X - d.origin.X) / d.surface.Width * 100
	dy := (p.Y - d.origin.Y) / d.surface.Height * 100
	d.last = Position{
		XPct: api.ClampPct(d.start.XPct + dx),
		YPct: api.ClampPct(d.start.YPct + dy),
	}
	return d.last
}

// End returns the final position of the drag.
func (d *Drag) End() Position {
	return d.last
}
