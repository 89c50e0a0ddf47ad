package maze

import "fmt"

// Instructions narrates a move list as drive commands: FORWARD <cells>,
// TURN LEFT, TURN RIGHT. The initial heading is the first move's
// direction, so a narration always opens with a FORWARD; a full reversal
// is narrated as two right turns. The output is deterministic, one
// command per entry.
func Instructions(moves []Move) []string {
	if len(moves) == 0 {
		return nil
	}

	out := make([]string, 0, 2*len(moves))
	heading := moves[0].Dir
	for _, m := range moves {
		// Quarter turns from the current heading, clockwise.
		switch (int(m.Dir) - int(heading) + 4) % 4 {
		case 1:
			out = append(out, "TURN RIGHT")
		case 2:
			out = append(out, "TURN RIGHT", "TURN RIGHT")
		case 3:
			out = append(out, "TURN LEFT")
		}
		heading = m.Dir
		out = append(out, fmt.Sprintf("FORWARD %d", m.Steps))
	}
	return out
}
