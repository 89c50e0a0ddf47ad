package maze

import "fmt"

// Direction of travel on the grid, in compass terms: north is up (toward
// row 0), east is right (toward higher columns).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [4]string{"N", "E", "S", "W"}

// String returns the single-letter direction name used on the wire.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit cell step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// MarshalText encodes the direction as its single-letter name, making
// moves serialize as {"dir":"E","steps":5}.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText decodes a single-letter direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection maps a single-letter name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Move is a run of unit steps in one direction.
type Move struct {
	Dir   Direction `json:"dir"`
	Steps int       `json:"steps"`
}

// directionFor classifies a cell delta as one of the four unit steps.
func directionFor(dx, dy int) (Direction, bool) {
	switch {
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 0 && dy == -1:
		return North, true
	default:
		return 0, false
	}
}

// Compress run-length encodes a cell path: consecutive steps in the same
// direction merge into one Move, a direction change starts a new one.
// Deltas that are not unit four-connected steps are skipped without
// closing the current run. Paths shorter than two cells have no moves.
func Compress(path []Cell) []Move {
	if len(path) < 2 {
		return nil
	}

	var moves []Move
	var cur Direction
	steps := 0
	prev := path[0]

	for _, c := range path[1:] {
		d, ok := directionFor(c.X-prev.X, c.Y-prev.Y)
		prev = c
		if !ok {
			continue
		}
		if steps > 0 && d == cur {
			steps++
			continue
		}
		if steps > 0 {
			moves = append(moves, Move{Dir: cur, Steps: steps})
		}
		cur, steps = d, 1
	}
	if steps > 0 {
		moves = append(moves, Move{Dir: cur, Steps: steps})
	}
	return moves
}

// Expand is the inverse of Compress: starting from start, it replays the
// moves into a full cell path, start inclusive.
func Expand(start Cell, moves []Move) []Cell {
	path := make([]Cell, 0, TotalSteps(moves)+1)
	path = append(path, start)
	cur := start
	for _, m := range moves {
		dx, dy := m.Dir.Delta()
		for i := 0; i < m.Steps; i++ {
			cur = Cell{X: cur.X + dx, Y: cur.Y + dy}
			path = append(path, cur)
		}
	}
	return path
}

// TotalSteps sums the step counts of a move list.
func TotalSteps(moves []Move) int {
	n := 0
	for _, m := range moves {
		n += m.Steps
	}
	return n
}
