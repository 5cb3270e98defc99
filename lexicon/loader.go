package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Load reads a word list file with one word per line. The lexicon is named
// after the file.
func Load(path string) (*WordSet, error) {
	log.Info().Str("path", path).Msg("Loading word list from file...")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ws, err := LoadReader(name, f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", ws.Name()).Int("words", ws.Len()).Msgf("%d words loaded.", ws.Len())
	return ws, nil
}

// LoadReader reads one word per line from r. Each line is trimmed and
// lowercased; blank lines are skipped.
func LoadReader(name string, r io.Reader) (*WordSet, error) {
	lower := cases.Lower(language.English)
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, lower.String(w))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %v: %w", name, err)
	}
	return NewWordSet(name, words), nil
}
