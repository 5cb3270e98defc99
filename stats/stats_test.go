package stats

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestScoreTally(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
		best   int
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 124},
		{[]int{1}, 1, 0, 1},
		{[]int{}, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1},
		{[]int{0, 0, 0}, 0, 0, 0},
	}
	for _, c := range cases {
		s := &ScoreTally{}
		for _, score := range c.scores {
			s.Push(score)
		}
		is.Equal(s.Hands(), len(c.scores))
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Best(), c.best)
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(closeTo(ZVal(95), 1.959964))
	is.True(closeTo(ZVal(99), 2.575829))
}

func closeTo(a, b float64) bool {
	return a-b < 1e-5 && b-a < 1e-5
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	s := &ScoreTally{}
	is.Equal(s.Summary(), "No hands played yet.")
	s.Push(10)
	s.Push(30)
	sum := s.Summary()
	is.True(strings.HasPrefix(sum, "Hands played: 2\nBest hand: 30 points\nLast hand: 30 points\n"))
	is.True(strings.Contains(sum, "Average: 20.00"))
}
