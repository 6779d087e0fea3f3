package api

// ClampPct pins a percentage coordinate to the [0, 100] surface range.
// Dragging past an edge pins to the edge rather than erroring; both the
// client stores and the server enforce this on every positional write.
func ClampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampValue pins a slider rating to its 0..100 scale.
func ClampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
