package lexicon

// A Lexicon answers whether a word is valid. Words are lowercase.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll is a lexicon that accepts every word.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}

// WordSet is a lexicon backed by a hash set. It is never modified after it
// is built and is safe for concurrent reads.
type WordSet struct {
	name  string
	words map[string]struct{}
}

// NewWordSet builds a WordSet out of the given words. Duplicates are fine.
func NewWordSet(name string, words []string) *WordSet {
	ws := &WordSet{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		ws.words[w] = struct{}{}
	}
	return ws
}

func (ws *WordSet) Name() string {
	if ws == nil {
		return ""
	}
	return ws.name
}

// HasWord returns true if word is in the set. A nil or empty set has no words.
func (ws *WordSet) HasWord(word string) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.words[word]
	return ok
}

// Len returns the number of distinct words.
func (ws *WordSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.words)
}
