package client

// Size is a pixel width and height.
type Size struct {
	Width  float64
	Height float64
}

// PlacementInput describes one floating panel placement. Anchor is in
// viewport coordinates; Scroll converts the result into document
// coordinates so the panel stays put while the page scrolls.
type PlacementInput struct {
	Anchor      Rect
	Panel       Size
	Viewport    Size
	Scroll      Point
	Gap         float64
	Margin      float64
	AlignBottom bool
}

// PlacePanel computes where a floating panel opens relative to its anchor.
// The panel prefers the anchor's right side; if that overflows the viewport
// it flips to the left, and if the left side would leave the viewport it is
// nudged back to the margin. Vertically the panel is top-aligned with the
// anchor, or bottom-aligned when AlignBottom is set; either way it never
// renders above the anchor's top edge, nor above the margin.
func PlacePanel(in PlacementInput) Point {
	left := in.Anchor.Left + in.Anchor.Width + in.Gap
	if left+in.Panel.Width > in.Viewport.Width-in.Margin {
		left = in.Anchor.Left - in.Gap - in.Panel.Width
	}
	if left < in.Margin {
		left = in.Margin
	}

	top := in.Anchor.Top
	if in.AlignBottom {
		top = in.Anchor.Top + in.Anchor.Height - in.Panel.Height
		if top < in.Anchor.Top {
			top = in.Anchor.Top
		}
	}
	if top < in.Margin {
		top = in.Margin
	}

	return Point{
		X: left + in.Scroll.X,
		Y: top + in.Scroll.Y,
	}
}
