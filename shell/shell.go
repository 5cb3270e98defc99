package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/stats"
)

const commandPrompt = "Enter n to deal a new hand, r to replay the last hand, or e to end game: "

const (
	noPriorHandMsg    = "You have not played a hand yet. Please play a new hand first!"
	invalidCommandMsg = "Invalid command."
)

var (
	errNoData         = errors.New("no data in this line")
	errNoPriorHand    = errors.New("no hand has been dealt yet")
	errInvalidCommand = errors.New("invalid command")
	errQuit           = errors.New("quit requested")
)

type Mode int

const (
	CommandMode Mode = iota
	HandMode
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd  string
	args []string
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

type ShellController struct {
	l        *readline.Instance
	prompter game.Prompter
	out      io.Writer

	config  *config.Config
	lexicon lexicon.Lexicon
	values  *alphabet.LetterValues
	dealer  *alphabet.Dealer
	curMode Mode

	lastHand     *alphabet.Hand
	lastHandSize int
	lastOutcome  *game.Outcome
	tally        stats.ScoreTally

	// lastAbandoned is set when the last hand was cut short with Ctrl-C.
	lastAbandoned bool
}

type readlinePrompter struct {
	l *readline.Instance
}

func (rp *readlinePrompter) Prompt(prompt string) (string, error) {
	rp.l.SetPrompt(prompt)
	return rp.l.Readline()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newDealer(cfg *config.Config) (*alphabet.Dealer, error) {
	seed, err := cfg.Seed()
	if err != nil {
		return nil, err
	}
	if seed != nil {
		log.Info().Msg("dealing hands from a fixed seed")
		return alphabet.NewSeededDealer(seed), nil
	}
	return alphabet.NewDealer(), nil
}

func newController(cfg *config.Config, lex lexicon.Lexicon, dealer *alphabet.Dealer,
	p game.Prompter, out io.Writer) *ShellController {

	return &ShellController{
		prompter: p,
		out:      out,
		config:   cfg,
		lexicon:  lex,
		values:   alphabet.EnglishLetterValues(),
		dealer:   dealer,
	}
}

// NewShellController creates an interactive shell that plays hands against
// the given lexicon.
func NewShellController(cfg *config.Config, lex lexicon.Lexicon) (*ShellController, error) {
	dealer, err := newDealer(cfg)
	if err != nil {
		return nil, err
	}
	sc := newController(cfg, lex, dealer, nil, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          commandPrompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "e",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.prompter = &readlinePrompter{l: l}
	sc.out = l.Stderr()
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) newHand() (*Response, error) {
	minSize := sc.config.GetInt(config.ConfigMinHandSize)
	maxSize := sc.config.GetInt(config.ConfigMaxHandSize)
	n := minSize
	if maxSize > minSize {
		n += sc.dealer.Intn(maxSize - minSize)
	}
	hand := sc.dealer.Deal(n)
	sc.lastHand = hand
	sc.lastHandSize = n
	log.Debug().Int("size", n).Str("hand", hand.String()).Msg("dealt-hand")
	return sc.playHand(hand, n)
}

func (sc *ShellController) replay() (*Response, error) {
	if sc.lastHand == nil {
		return nil, errNoPriorHand
	}
	return sc.playHand(sc.lastHand, sc.lastHandSize)
}

func (sc *ShellController) playHand(hand *alphabet.Hand, n int) (*Response, error) {
	sc.curMode = HandMode
	defer func() { sc.curMode = CommandMode }()

	s := game.NewSession(game.SessionConfig{
		HandSize: n,
		Lexicon:  sc.lexicon,
		Values:   sc.values,
	}, hand)
	o, err := s.Run(sc.prompter, sc.out)
	sc.lastOutcome = o
	sc.lastAbandoned = errors.Is(err, readline.ErrInterrupt)
	if !sc.lastAbandoned {
		sc.tally.Push(o.Score)
	}
	log.Debug().Str("lexicon", sc.lexicon.Name()).Str("state", o.State.String()).
		Bool("abandoned", sc.lastAbandoned).Int("score", o.Score).
		Int("words", len(o.Plays)).Msg("hand-finished")
	if sc.lastAbandoned {
		return msg(fmt.Sprintf("Hand interrupted. Total score: %d points.", o.Score)), nil
	}
	return nil, err
}

func (sc *ShellController) show() (*Response, error) {
	if sc.lastHand == nil {
		return nil, errNoPriorHand
	}
	return msg(fmt.Sprintf("Last hand (%d letters): %s", sc.lastHandSize, sc.lastHand)), nil
}

func (sc *ShellController) last() (*Response, error) {
	if sc.lastOutcome == nil {
		return nil, errNoPriorHand
	}
	o := sc.lastOutcome
	if len(o.Plays) == 0 {
		return msg(fmt.Sprintf("No words played. Total score: %d points.", o.Score)), nil
	}
	var sb strings.Builder
	for _, p := range o.Plays {
		fmt.Fprintf(&sb, "%-12s%4d\n", p.Word, p.Score)
	}
	state := o.State.String()
	if sc.lastAbandoned {
		state = "abandoned"
	}
	fmt.Fprintf(&sb, "Total score: %d points (%s)", o.Score, state)
	return msg(sb.String()), nil
}

func (sc *ShellController) handle(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "n", "r", "e":
		if len(cmd.args) > 0 {
			return nil, errInvalidCommand
		}
	}
	switch cmd.cmd {
	case "n":
		return sc.newHand()
	case "r":
		return sc.replay()
	case "e":
		return nil, errQuit
	case "show":
		return sc.show()
	case "last":
		return sc.last()
	case "stats":
		return msg(sc.tally.Summary()), nil
	case "help", "?":
		return msg(usage()), nil
	default:
		log.Debug().Msgf("command %q not found", cmd.cmd)
		return nil, errInvalidCommand
	}
}

func (sc *ShellController) run() error {
	for {
		line, err := sc.prompter.Prompt(commandPrompt)
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		cmd, err := extractFields(line)
		if err != nil {
			sc.showMessage(invalidCommandMsg)
			continue
		}
		resp, err := sc.handle(cmd)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errNoPriorHand):
			sc.showMessage(noPriorHandMsg)
		case errors.Is(err, errInvalidCommand):
			sc.showMessage(invalidCommandMsg)
		case err != nil:
			sc.showError(err)
		case resp != nil:
			sc.showMessage(resp.message)
		}
	}
}

// Loop runs the shell until the user ends the game, then sends an interrupt
// on sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	if err := sc.run(); err != nil {
		log.Error().Err(err).Msg("shell-loop")
	}
	log.Debug().Msgf("Exiting readline loop...")
	sig <- syscall.SIGINT
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}
