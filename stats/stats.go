package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ScoreTally keeps running statistics over the final scores of the hands
// played in a game.
type ScoreTally struct {
	hands int
	last  int
	best  int

	// For Welford's algorithm:
	mean float64
	m2   float64
}

// Push records the final score of a hand.
func (s *ScoreTally) Push(score int) {
	s.last = score
	if s.hands == 0 || score > s.best {
		s.best = score
	}
	s.hands++
	val := float64(score)
	delta := val - s.mean
	s.mean += delta / float64(s.hands)
	s.m2 += delta * (val - s.mean)
}

func (s *ScoreTally) Hands() int {
	return s.hands
}

func (s *ScoreTally) Last() int {
	return s.last
}

func (s *ScoreTally) Best() int {
	return s.best
}

func (s *ScoreTally) Mean() float64 {
	return s.mean
}

func (s *ScoreTally) Variance() float64 {
	if s.hands <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.hands-1)
}

func (s *ScoreTally) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean score.
func (s *ScoreTally) StandardError() float64 {
	if s.hands == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.hands))
}

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}

// Summary is a user-visible report of the tally.
func (s *ScoreTally) Summary() string {
	if s.hands == 0 {
		return "No hands played yet."
	}
	return fmt.Sprintf("Hands played: %d\nBest hand: %d points\nLast hand: %d points\n"+
		"Average: %.2f ± %.2f points (95%%), stdev %.2f",
		s.hands, s.best, s.last, s.mean, ZVal(95)*s.StandardError(), s.Stdev())
}
