package alphabet

import (
	"testing"

	"github.com/matryer/is"
)

func TestDealSizeAndVowels(t *testing.T) {
	is := is.New(t)
	d := NewDealer()
	for n := 0; n <= 30; n++ {
		for i := 0; i < 20; i++ {
			h := d.Deal(n)
			is.Equal(h.NumTiles(), n)
			is.Equal(h.NumVowels(), n/3)
		}
	}
}

func TestDealEmpty(t *testing.T) {
	is := is.New(t)
	d := NewDealer()
	is.Equal(d.Deal(0).NumTiles(), 0)
	is.Equal(d.Deal(-3).NumTiles(), 0)
	is.Equal(d.Deal(0).String(), "")
}

func TestSeededDealerIsDeterministic(t *testing.T) {
	is := is.New(t)
	d1 := NewSeededDealer([]byte("wordhand"))
	d2 := NewSeededDealer([]byte("wordhand"))
	for n := 1; n < 12; n++ {
		is.Equal(d1.Deal(n), d2.Deal(n))
		is.Equal(d1.Intn(5), d2.Intn(5))
	}
}

func TestDealUsesAllLetters(t *testing.T) {
	is := is.New(t)
	d := NewSeededDealer([]byte{1, 2, 3})
	seen := map[rune]bool{}
	for i := 0; i < 500; i++ {
		for r := range d.Deal(9).Counts() {
			seen[r] = true
		}
	}
	// With 500 hands every letter should have shown up at least once.
	is.Equal(len(seen), NumLetters)
}

func TestIntnRange(t *testing.T) {
	is := is.New(t)
	d := NewSeededDealer(nil)
	for i := 0; i < 1000; i++ {
		v := d.Intn(5) + 5
		is.True(v >= 5)
		is.True(v < 10)
	}
}
