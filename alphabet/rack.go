package alphabet

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Hand is the multiset of letters a player holds. It is never modified once
// it is handed out; playing a word produces a new Hand with Remove.
type Hand struct {
	// letArr is an array of letter counts indexed by MachineLetter.
	letArr [NumLetters]int
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// HandFromString creates a Hand from a string of letters, e.g. "aabct".
func HandFromString(letters string) *Hand {
	h := &Hand{}
	for _, c := range letters {
		ml, err := Val(c)
		if err != nil {
			log.Error().Msgf("Hand has an illegal character: %v", string(c))
			continue
		}
		h.letArr[ml]++
	}
	return h
}

// HandFromCounts creates a Hand from a letter -> count map. Negative counts
// and runes outside the alphabet are ignored.
func HandFromCounts(counts map[rune]int) *Hand {
	h := &Hand{}
	for r, ct := range counts {
		ml, err := Val(r)
		if err != nil || ct < 0 {
			log.Error().Msgf("Ignoring hand entry %q: %d", r, ct)
			continue
		}
		h.letArr[ml] = ct
	}
	return h
}

// Copy returns a deep copy of this hand.
func (h *Hand) Copy() *Hand {
	n := *h
	return &n
}

func (h *Hand) add(ml MachineLetter) {
	h.letArr[ml]++
}

// Count returns how many of the given letter are in the hand. Runes that are
// not in the alphabet are never in a hand.
func (h *Hand) Count(r rune) int {
	ml, err := Val(r)
	if err != nil {
		return 0
	}
	return h.letArr[ml]
}

// Counts returns the letters with a non-zero count.
func (h *Hand) Counts() map[rune]int {
	m := make(map[rune]int)
	for i, ct := range h.letArr {
		if ct != 0 {
			m[MachineLetter(i).UserVisible()] = ct
		}
	}
	return m
}

// NumTiles returns the number of letters left in the hand.
func (h *Hand) NumTiles() int {
	return lo.Sum(h.letArr[:])
}

// NumVowels returns the number of vowels in the hand.
func (h *Hand) NumVowels() int {
	return lo.SumBy([]rune(Vowels), func(r rune) int {
		return h.Count(r)
	})
}

// Remove returns a new hand without the letters of word. The receiver is
// not modified. It assumes that the hand holds all of the letters in word;
// callers must validate the word first, otherwise counts can go negative.
func (h *Hand) Remove(word string) *Hand {
	n := h.Copy()
	for _, c := range word {
		ml, err := Val(c)
		if err != nil {
			continue
		}
		n.letArr[ml]--
	}
	return n
}

// TilesOn returns the MachineLetters of the hand's current letters. It is
// alphabetized.
func (h *Hand) TilesOn() MachineWord {
	letters := make(MachineWord, 0, NumLetters)
	for i, ct := range h.letArr {
		for j := 0; j < ct; j++ {
			letters = append(letters, MachineLetter(i))
		}
	}
	return letters
}

// String returns a user-visible version of this hand, letters separated by
// spaces. Letters with a zero count are left out.
func (h *Hand) String() string {
	tiles := h.TilesOn()
	strs := lo.Map(tiles, func(ml MachineLetter, _ int) string {
		return string(ml.UserVisible())
	})
	return strings.Join(strs, " ")
}
