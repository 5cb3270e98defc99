package game

import (
	"github.com/samber/lo"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

// BingoBonus is added to the score of a word that uses all n letters of a
// freshly dealt hand.
const BingoBonus = 50

// Score returns the score for a word. It assumes the word is valid; the empty
// word and words with letters outside the alphabet score 0.
//
// The score is the sum of the letter values times the length of the word,
// plus BingoBonus if the word is exactly n letters long. n is the size the
// hand was dealt at, not what is left of it, so the bonus can only be earned
// by playing the whole hand on the first turn.
func Score(word string, n int, values *alphabet.LetterValues) int {
	mw, err := alphabet.ToMachineWord(word)
	if err != nil || len(mw) == 0 {
		return 0
	}
	sum := lo.SumBy(mw, values.Score) * len(mw)
	if len(mw) == n {
		sum += BingoBonus
	}
	return sum
}

// IsValid returns true if word is in the lexicon and is entirely made up of
// letters in the hand. Empty words, letters outside the alphabet and missing
// arguments all make the word invalid; IsValid never panics.
func IsValid(word string, hand *alphabet.Hand, lex lexicon.Lexicon) bool {
	if word == "" || hand == nil || lex == nil {
		return false
	}
	mw, err := alphabet.ToMachineWord(word)
	if err != nil {
		return false
	}
	for ml, ct := range lo.CountValues(mw) {
		if hand.Count(ml.UserVisible()) < ct {
			return false
		}
	}
	return lex.HasWord(mw.UserVisible())
}
