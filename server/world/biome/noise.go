package biome

import (
	"math"
	"math/rand/v2"
)

var simplexGradients = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// simplex produces deterministic 2D simplex noise in the range [-1, 1].
type simplex struct {
	perm [512]uint8
}

func newSimplex(seed uint64) *simplex {
	s := &simplex{}
	r := rand.New(rand.NewPCG(seed, seed))
	p := r.Perm(256)
	for i := range s.perm {
		s.perm[i] = uint8(p[i&255])
	}
	return s
}

func (s *simplex) noise2D(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)
	skew := (x + y) * f2
	i, j := int(math.Floor(x+skew)), int(math.Floor(y+skew))

	unskew := float64(i+j) * g2
	x0, y0 := x-(float64(i)-unskew), y-(float64(j)-unskew)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+g2, y0-float64(j1)+g2
	x2, y2 := x0-1+2*g2, y0-1+2*g2

	ii, jj := i&255, j&255
	return 70 * (s.corner(ii+int(s.perm[jj]), x0, y0) +
		s.corner(ii+i1+int(s.perm[jj+j1]), x1, y1) +
		s.corner(ii+1+int(s.perm[jj+1]), x2, y2))
}

func (s *simplex) corner(index int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	g := simplexGradients[s.perm[index]%12]
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}
