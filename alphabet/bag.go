package alphabet

import (
	"lukechampine.com/frand"
)

const (
	seedSize   = 32
	bufferSize = 1024
	// chacha rounds
	numRounds = 12
)

// A Dealer deals random hands. Letters are drawn with replacement, so there
// is no bag to run out of.
type Dealer struct {
	randSource *frand.RNG
}

// NewDealer creates a dealer with a cryptographically seeded random source.
func NewDealer() *Dealer {
	return &Dealer{randSource: frand.New()}
}

// NewSeededDealer creates a dealer that deals the same sequence of hands for
// the same seed. Seeds longer than 32 bytes are truncated; shorter ones are
// zero-padded.
func NewSeededDealer(seed []byte) *Dealer {
	s := make([]byte, seedSize)
	copy(s, seed)
	return &Dealer{randSource: frand.NewCustom(s, bufferSize, numRounds)}
}

// Intn returns a uniform random int in [0, n). It panics if n <= 0.
func (d *Dealer) Intn(n int) int {
	return d.randSource.Intn(n)
}

// Deal returns a random hand of n letters. A third of them (rounded down)
// are vowels; the rest are consonants. A negative n deals an empty hand.
func (d *Dealer) Deal(n int) *Hand {
	h := NewHand()
	if n <= 0 {
		return h
	}
	numVowels := n / 3
	for i := 0; i < numVowels; i++ {
		h.add(d.draw(Vowels))
	}
	for i := numVowels; i < n; i++ {
		h.add(d.draw(Consonants))
	}
	return h
}

func (d *Dealer) draw(from string) MachineLetter {
	// from is plain ASCII, so byte indexing is safe.
	ml, _ := Val(rune(from[d.randSource.Intn(len(from))]))
	return ml
}
