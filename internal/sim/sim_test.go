package sim

// midpointSource returns the middle of every integer range and a breakfast
// roll that always succeeds. Sleep quality lands on "okay".
type midpointSource struct{}

func (midpointSource) IntN(n int) int   { return n / 2 }
func (midpointSource) Float64() float64 { return 0.5 }

// lowSource returns the bottom of every range and skips breakfast.
type lowSource struct{}

func (lowSource) IntN(int) int     { return 0 }
func (lowSource) Float64() float64 { return 0 }

// scriptedSource replays fixed values, then falls back to zero.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
