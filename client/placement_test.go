package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlacePanel_RightOfAnchor(t *testing.T) {
	pos := PlacePanel(PlacementInput{
		Anchor:   Rect{Left: 100, Top: 200, Width: 40, Height: 40},
		Panel:    Size{Width: 300, Height: 150},
		Viewport: Size{Width: 1200, Height: 800},
		Gap:      8,
		Margin:   16,
	})
	require.Equal(t, Point{X: 148, Y: 200}, pos)
}

func TestPlacePanel_FlipsLeftOnOverflow(t *testing.T) {
	pos := PlacePanel(PlacementInput{
		Anchor:   Rect{Left: 1000, Top: 200, Width: 40, Height: 40},
		Panel:    Size{Width: 300, Height: 150},
		Viewport: Size{Width: 1200, Height: 800},
		Gap:      8,
		Margin:   16,
	})
	require.Equal(t, Point{X: 692, Y: 200}, pos)
}

func TestPlacePanel_NudgesToMargin(t *testing.T) {
	// Too wide for either side: the flipped position would leave the
	// viewport, so the panel sits at the margin.
	pos := PlacePanel(PlacementInput{
		Anchor:   Rect{Left: 200, Top: 300, Width: 40, Height: 40},
		Panel:    Size{Width: 500, Height: 150},
		Viewport: Size{Width: 600, Height: 800},
		Gap:      8,
		Margin:   16,
	})
	require.Equal(t, Point{X: 16, Y: 300}, pos)
}

func TestPlacePanel_AlignBottom(t *testing.T) {
	pos := PlacePanel(PlacementInput{
		Anchor:      Rect{Left: 100, Top: 400, Width: 40, Height: 60},
		Panel:       Size{Width: 200, Height: 40},
		Viewport:    Size{Width: 1200, Height: 800},
		Gap:         8,
		Margin:      16,
		AlignBottom: true,
	})
	require.Equal(t, Point{X: 148, Y: 420}, pos)
}

func TestPlacePanel_TallPanelStaysBelowAnchorTop(t *testing.T) {
	// A panel taller than its anchor cannot bottom-align without rising
	// above the anchor; it pins to the anchor's top edge instead.
	pos := PlacePanel(PlacementInput{
		Anchor:      Rect{Left: 100, Top: 400, Width: 40, Height: 60},
		Panel:       Size{Width: 200, Height: 150},
		Viewport:    Size{Width: 1200, Height: 800},
		Gap:         8,
		Margin:      16,
		AlignBottom: true,
	})
	require.Equal(t, Point{X: 148, Y: 400}, pos)
}

func TestPlacePanel_MarginFloor(t *testing.T) {
	pos := PlacePanel(PlacementInput{
		Anchor:      Rect{Left: 100, Top: 10, Width: 40, Height: 40},
		Panel:       Size{Width: 200, Height: 300},
		Viewport:    Size{Width: 1200, Height: 800},
		Gap:         8,
		Margin:      16,
		AlignBottom: true,
	})
	require.Equal(t, float64(16), pos.Y)
}

func TestPlacePanel_ScrollOffset(t *testing.T) {
	pos := PlacePanel(PlacementInput{
		Anchor:   Rect{Left: 100, Top: 200, Width: 40, Height: 40},
		Panel:    Size{Width: 300, Height: 150},
		Viewport: Size{Width: 1200, Height: 800},
		Scroll:   Point{X: 0, Y: 500},
		Gap:      8,
		Margin:   16,
	})
	require.Equal(t, Point{X: 148, Y: 700}, pos)
}
