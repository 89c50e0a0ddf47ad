package maze

// BorderOpenings collects every open corridor cell on the grid border, in
// the fixed scan order: top row left to right, bottom row left to right,
// left column top to bottom, right column top to bottom. Corner cells show
// up once per scan that covers them; the duplicates are kept so the
// selection below stays stable (and a 1x1 grid with its single cell free
// yields start == goal).
func BorderOpenings(g *Grid) []Cell {
	var openings []Cell
	for x := 0; x < g.Cols(); x++ {
		if g.Free(x, 0) {
			openings = append(openings, Cell{X: x, Y: 0})
		}
	}
	for x := 0; x < g.Cols(); x++ {
		if g.Free(x, g.Rows()-1) {
			openings = append(openings, Cell{X: x, Y: g.Rows() - 1})
		}
	}
	for y := 0; y < g.Rows(); y++ {
		if g.Free(0, y) {
			openings = append(openings, Cell{X: 0, Y: y})
		}
	}
	for y := 0; y < g.Rows(); y++ {
		if g.Free(g.Cols()-1, y) {
			openings = append(openings, Cell{X: g.Cols() - 1, Y: y})
		}
	}
	return openings
}

// FindOpenings picks the entrance and exit: the first and the last border
// opening in scan order. Fewer than two candidates fails with
// ErrNoOpenings.
func FindOpenings(g *Grid) (start, goal Cell, err error) {
	openings := BorderOpenings(g)
	if len(openings) < 2 {
		return Cell{}, Cell{}, ErrNoOpenings
	}
	return openings[0], openings[len(openings)-1], nil
}
