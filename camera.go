package main

// Camera is the viewport rectangle in world coordinates. X and Y are the
// top-left corner, always clamped so no area outside the world is shown.
type Camera struct {
	X, Y int
	W, H int
}

// centeredOn positions the camera so the given point sits at the viewport
// center, clamped per axis into [0, world-view]. Coordinates are rounded to
// whole pixels to avoid sub-pixel sampling seams in the backdrop.
func (c Camera) centeredOn(x, y float64, worldW, worldH int) Camera {
	c.X = clampAxis(roundToInt(x)-c.W/2, worldW, c.W)
	c.Y = clampAxis(roundToInt(y)-c.H/2, worldH, c.H)
	return c
}

// clampAxis clamps a top-left position into [0, world-view]. When the
// viewport is larger than the world on this axis the position pins to 0.
func clampAxis(pos, world, view int) int {
	limit := world - view
	if limit < 0 {
		limit = 0
	}
	if pos < 0 {
		return 0
	}
	if pos > limit {
		return limit
	}
	return pos
}
