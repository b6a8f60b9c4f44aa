package leveldata

// Classification splits level rectangles by the collision they get.
type Classification struct {
	Floors   []Rect
	Ceilings []Rect
	Walls    []Rect
	OneWay   []Rect
}

// Classify sorts rectangles into floor, ceiling, walls and one-way platforms.
// Horizontal rectangles touching the bottom or top edge (within tol) are floor
// or ceiling, vertical rectangles are walls, and everything else is a one-way
// platform.
func Classify(rects []Rect, width, height, tol float64) Classification {
	var c Classification
	for _, r := range rects {
		horizontal := r.W >= r.H
		switch {
		case horizontal && r.Bottom() >= height-tol:
			c.Floors = append(c.Floors, r)
		case horizontal && r.Y <= tol:
			c.Ceilings = append(c.Ceilings, r)
		case !horizontal:
			c.Walls = append(c.Walls, r)
		default:
			c.OneWay = append(c.OneWay, r)
		}
	}
	return c
}
