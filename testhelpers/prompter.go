package testhelpers

import (
	"io"

	"github.com/domino14/wordhand/lexicon"
)

type scriptedLine struct {
	text string
	err  error
}

// ScriptedPrompter answers prompts from a fixed list of lines. Once the
// lines run out it returns io.EOF, like a closed terminal.
type ScriptedPrompter struct {
	lines   []scriptedLine
	Prompts []string
}

func NewScriptedPrompter(lines ...string) *ScriptedPrompter {
	sp := &ScriptedPrompter{}
	return sp.Then(lines...)
}

// Then queues more lines to be answered without error.
func (sp *ScriptedPrompter) Then(lines ...string) *ScriptedPrompter {
	for _, l := range lines {
		sp.lines = append(sp.lines, scriptedLine{text: l})
	}
	return sp
}

// ThenErr queues a prompt that returns the partial line along with err, the
// way readline reports Ctrl-C.
func (sp *ScriptedPrompter) ThenErr(line string, err error) *ScriptedPrompter {
	sp.lines = append(sp.lines, scriptedLine{text: line, err: err})
	return sp
}

func (sp *ScriptedPrompter) Prompt(prompt string) (string, error) {
	sp.Prompts = append(sp.Prompts, prompt)
	if len(sp.lines) == 0 {
		return "", io.EOF
	}
	line := sp.lines[0]
	sp.lines = sp.lines[1:]
	return line.text, line.err
}

// Remaining returns the number of lines that were not read.
func (sp *ScriptedPrompter) Remaining() int {
	return len(sp.lines)
}

// SmallLexicon is a handful of words used across tests.
func SmallLexicon() *lexicon.WordSet {
	return lexicon.NewWordSet("small", []string{
		"a", "at", "cat", "act", "tact", "bat", "tab", "abcdefg",
		"quiz", "hello", "zzz",
	})
}
