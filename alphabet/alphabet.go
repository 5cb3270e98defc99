package alphabet

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// NumLetters is the size of the alphabet. Hands and value tables are
	// indexed from 0 to NumLetters-1.
	NumLetters = 26

	Vowels     = "aeiou"
	Consonants = "bcdfghjklmnpqrstvwxyz"
)

// MachineLetter is a machine-only representation of a letter: 'a' is 0,
// 'b' is 1, ... all the way to 'z', which is 25.
type MachineLetter uint8

// MachineWord is a slice of MachineLetter; it is a machine-only representation
// of a word.
type MachineWord []MachineLetter

// Val returns the 'value' of this rune in the alphabet; i.e a number from
// 0 to NumLetters-1. Only lowercase a-z are part of the alphabet.
func Val(r rune) (MachineLetter, error) {
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("letter %q not found in alphabet", r)
	}
	return MachineLetter(r - 'a'), nil
}

// UserVisible returns the rune this machine letter stands for.
func (ml MachineLetter) UserVisible() rune {
	return rune('a' + ml)
}

// IsVowel reports whether r is one of the five vowels.
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// ToMachineWord converts a user-visible word into machine letters. It fails
// on the first rune that is not part of the alphabet.
func ToMachineWord(word string) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, r := range word {
		ml, err := Val(r)
		if err != nil {
			return nil, err
		}
		mw = append(mw, ml)
	}
	return mw, nil
}

// UserVisible turns a machine word back into a string.
func (mw MachineWord) UserVisible() string {
	var sb strings.Builder
	for _, ml := range mw {
		sb.WriteRune(ml.UserVisible())
	}
	return sb.String()
}

// IsAlpha reports whether s is non-empty and made up only of letters. It
// accepts letters outside of the game alphabet (uppercase, accented); those
// are rejected later by word validation.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
