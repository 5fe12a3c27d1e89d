package world

// SightSamples is the default number of points sampled along a sight line.
const SightSamples = 20

// SampleSegment walks samples equally spaced points from just after from up to and
// including to, calling blocked for each. It returns false as soon as blocked reports
// true. This is a coarse test: thin obstacles between two samples are missed.
func SampleSegment(from, to Vec2, samples int, blocked func(p Vec2) bool) bool {
	if samples <= 0 {
		return true
	}

	step := to.Sub(from).Scale(1 / float64(samples))
	p := from
	for i := 0; i < samples; i++ {
		p = p.Add(step)
		if blocked(p) {
			return false
		}
	}
	return true
}

// ChebyshevDist returns Chebyshev (chessboard) distance between two cells.
func ChebyshevDist(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
