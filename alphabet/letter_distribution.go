package alphabet

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed letter_values.yaml
var englishValuesYAML []byte

var englishValues = mustParseLetterValues(englishValuesYAML)

// LetterValues holds the point value of every letter in the alphabet. It is
// never modified after it is parsed, so it can be shared freely.
type LetterValues struct {
	name   string
	values [NumLetters]int
}

type letterValuesFile struct {
	Name   string         `yaml:"name"`
	Values map[string]int `yaml:"values"`
}

// EnglishLetterValues returns the standard Scrabble letter values.
func EnglishLetterValues() *LetterValues {
	return englishValues
}

// ParseLetterValues parses a YAML letter value table. Every letter of the
// alphabet must be present with a positive value.
func ParseLetterValues(data []byte) (*LetterValues, error) {
	var f letterValuesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing letter values: %w", err)
	}
	if f.Name == "" {
		return nil, errors.New("letter values need a name")
	}
	lv := &LetterValues{name: f.Name}
	for k, v := range f.Values {
		rs := []rune(k)
		if len(rs) != 1 {
			return nil, fmt.Errorf("bad letter key %q", k)
		}
		ml, err := Val(rs[0])
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("letter %q has non-positive value %d", k, v)
		}
		lv.values[ml] = v
	}
	for i, v := range lv.values {
		if v == 0 {
			return nil, fmt.Errorf("letter %q has no value", MachineLetter(i).UserVisible())
		}
	}
	return lv, nil
}

func mustParseLetterValues(data []byte) *LetterValues {
	lv, err := ParseLetterValues(data)
	if err != nil {
		panic(err)
	}
	return lv
}

func (lv *LetterValues) Name() string {
	return lv.name
}

// Score returns the point value of a machine letter.
func (lv *LetterValues) Score(ml MachineLetter) int {
	return lv.values[ml]
}
