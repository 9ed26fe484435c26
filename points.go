package dotplot

// Point is the position of one dot: X is the key of its stack, Y its
// 1-based height within the stack.
type Point struct {
	X float64
	Y int
}

// Points converts stacks to dot positions. Points are grouped by stack
// in stack order and within a stack by increasing height; equal values
// simply stack up.
func Points(st Stacks) []Point {
	points := make([]Point, 0, st.N())
	for _, s := range st {
		for i := range s.Obs {
			points = append(points, Point{X: s.Key, Y: i + 1})
		}
	}
	return points
}
