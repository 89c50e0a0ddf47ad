package maze

import "fmt"

// Neighbor probe order: east, west, south, north. The order is part of
// the solver contract; it fixes the tie-break among equal-length paths,
// so identical inputs always reconstruct the identical path.
var neighborSteps = [4]struct{ dx, dy int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// Solve runs a breadth-first search over the four-connected grid and
// returns the shortest cell path from start to goal, both inclusive. An
// unreachable goal fails with ErrNoPath. A start equal to goal yields a
// single-cell path.
func Solve(g *Grid, start, goal Cell) ([]Cell, error) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("endpoints %v, %v outside %dx%d grid", start, goal, g.Cols(), g.Rows())
	}
	if !g.Free(start.X, start.Y) || !g.Free(goal.X, goal.Y) {
		return nil, fmt.Errorf("endpoints %v, %v must be open cells", start, goal)
	}

	dist, parent := g.search(start, &goal)
	goalIdx := goal.Y*g.cols + goal.X
	if dist[goalIdx] < 0 {
		return nil, ErrNoPath
	}

	path := make([]Cell, 0, dist[goalIdx]+1)
	for idx := goalIdx; idx >= 0; idx = parent[idx] {
		path = append(path, Cell{X: idx % g.cols, Y: idx / g.cols})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// DistanceField runs the search from start across the whole grid and
// returns the distance array, row-major, -1 for unreached cells.
func DistanceField(g *Grid, start Cell) ([]int, error) {
	if !g.InBounds(start) || !g.Free(start.X, start.Y) {
		return nil, fmt.Errorf("start %v is not an open cell", start)
	}
	dist, _ := g.search(start, nil)
	return dist, nil
}

// search is the breadth-first core shared by Solve and DistanceField.
// A non-nil goal stops the search as soon as that cell is dequeued; the
// distance array doubles as the visited set, so no cell enters the queue
// twice.
func (g *Grid) search(start Cell, goal *Cell) (dist, parent []int) {
	n := g.cols * g.rows
	dist = make([]int, n)
	parent = make([]int, n)
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}

	queue := make([]Cell, 0, n)
	queue = append(queue, start)
	dist[start.Y*g.cols+start.X] = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if goal != nil && cur == *goal {
			break
		}
		curIdx := cur.Y*g.cols + cur.X
		for _, step := range neighborSteps {
			nx, ny := cur.X+step.dx, cur.Y+step.dy
			if !g.Free(nx, ny) {
				continue
			}
			nIdx := ny*g.cols + nx
			if dist[nIdx] >= 0 {
				continue
			}
			dist[nIdx] = dist[curIdx] + 1
			parent[nIdx] = curIdx
			queue = append(queue, Cell{X: nx, Y: ny})
		}
	}

	return dist, parent
}
