package grid

import "math/rand"

type delta struct{ dx, dy int }

// north, east, south, west, in that canonical order before shuffling.
var directions = [4]delta{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// Neighbours returns the orthogonal neighbours of the cell at ref that are
// in bounds, not an obstacle, and either unclaimed or already owned by
// netNum. The four candidate directions are visited in a uniformly random
// permutation per call, using rng supplied by the caller's context rather
// than a package-global generator, so a routing session stays reproducible
// under a fixed seed.
func (l *Layout) Neighbours(ref Ref, netNum int, rng *rand.Rand) []Ref {
	c := l.cells[ref]
	order := rng.Perm(4)

	out := make([]Ref, 0, 4)
	for _, i := range order {
		d := directions[i]
		nx, ny := c.X+d.dx, c.Y+d.dy
		if nx < 0 || nx >= l.XSize || ny < 0 || ny >= l.YSize {
			continue
		}
		nr, err := l.ref(nx, ny)
		if err != nil {
			continue
		}
		n := &l.cells[nr]
		if n.IsObstacle() {
			continue
		}
		if n.NetNum != 0 && n.NetNum != netNum {
			continue
		}
		out = append(out, nr)
	}
	return out
}
