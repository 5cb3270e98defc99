package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names at the command prompt. Words typed
// while playing a hand are never completed.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{"n", "r", "e", "show", "last", "stats", "help"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if c.sc.curMode != CommandMode {
		return nil, 0
	}
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '
	// Commands take no arguments.
	if len(fields) > 1 || (len(fields) == 1 && endsWithSpace) {
		return nil, 0
	}
	var prefix string
	if len(fields) == 1 {
		prefix = fields[0]
	}

	var matches [][]rune
	for _, completion := range commandNames {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
