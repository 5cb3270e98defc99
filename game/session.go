package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

// QuitSentinel ends a session early when entered instead of a word.
const QuitSentinel = "."

const wordPrompt = "Enter word, or a '.' to indicate that you are finished: "

var (
	ErrMalformedWord = errors.New("word contains characters that are not letters")
	ErrRejectedWord  = errors.New("word is not playable with this hand")
	ErrSessionOver   = errors.New("session is over")
)

type State int

const (
	Active State = iota
	Exhausted
	Quit
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// A Prompter shows a prompt and blocks until the user enters a line.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// SessionConfig is fixed for the lifetime of a session.
type SessionConfig struct {
	// HandSize is the size the hand was dealt at. It is only used for the
	// full-hand bonus.
	HandSize int
	Lexicon  lexicon.Lexicon
	// Values defaults to the English letter values.
	Values *alphabet.LetterValues
}

// Play is a word that was accepted, along with what it scored.
type Play struct {
	Word  string
	Score int
}

// Outcome is what a finished (or interrupted) session hands back.
type Outcome struct {
	State State
	Score int
	// Hand is what was left of the hand. It is empty when State is Exhausted.
	Hand  *alphabet.Hand
	Plays []Play
}

// Session plays out a single hand.
type Session struct {
	cfg   SessionConfig
	hand  *alphabet.Hand
	score int
	state State
	plays []Play
}

// NewSession starts a session on a copy of hand, so the caller's hand can be
// replayed later.
func NewSession(cfg SessionConfig, hand *alphabet.Hand) *Session {
	if cfg.Values == nil {
		cfg.Values = alphabet.EnglishLetterValues()
	}
	if hand == nil {
		hand = alphabet.NewHand()
	}
	return &Session{cfg: cfg, hand: hand.Copy(), state: Active}
}

func (s *Session) Hand() *alphabet.Hand {
	return s.hand
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Plays() []Play {
	return s.plays
}

// CheckExhausted moves an active session with no letters left into the
// Exhausted state. It returns true if the session is exhausted.
func (s *Session) CheckExhausted() bool {
	if s.state == Active && s.hand.NumTiles() <= 0 {
		s.state = Exhausted
	}
	return s.state == Exhausted
}

// Submit processes one line of user input.
//
// A valid word is scored and its letters are taken out of the hand. A nil
// play with a nil error means the user quit. ErrMalformedWord and
// ErrRejectedWord leave the session untouched; ErrSessionOver is returned
// once the session has left the Active state.
func (s *Session) Submit(line string) (*Play, error) {
	if s.state != Active || s.CheckExhausted() {
		return nil, ErrSessionOver
	}
	if line == QuitSentinel {
		s.state = Quit
		return nil, nil
	}
	if !alphabet.IsAlpha(line) {
		return nil, ErrMalformedWord
	}
	if !IsValid(line, s.hand, s.cfg.Lexicon) {
		return nil, ErrRejectedWord
	}
	p := Play{Word: line, Score: Score(line, s.cfg.HandSize, s.cfg.Values)}
	s.score += p.Score
	s.hand = s.hand.Remove(line)
	s.plays = append(s.plays, p)
	log.Debug().Str("word", p.Word).Int("score", p.Score).Int("total", s.score).
		Int("remaining", s.hand.NumTiles()).Msg("play")
	return &p, nil
}

// Outcome returns the session's current score and hand.
func (s *Session) Outcome() *Outcome {
	return &Outcome{
		State: s.state,
		Score: s.score,
		Hand:  s.hand,
		Plays: s.plays,
	}
}

// Run plays the session interactively until the hand runs out or the user
// quits. Only an error from the prompter stops it early; the outcome up to
// that point is still returned.
func (s *Session) Run(p Prompter, w io.Writer) (*Outcome, error) {
	for {
		if s.CheckExhausted() {
			fmt.Fprintf(w, "Run out of letters. Total score: %d points.\n", s.score)
			return s.Outcome(), nil
		}
		fmt.Fprintf(w, "Current Hand: %s\n", s.hand)
		line, err := p.Prompt(wordPrompt)
		if err != nil {
			return s.Outcome(), fmt.Errorf("reading word: %w", err)
		}
		play, err := s.Submit(line)
		switch {
		case errors.Is(err, ErrMalformedWord), errors.Is(err, ErrRejectedWord):
			log.Debug().Err(err).Str("input", line).Msg("invalid-word")
			fmt.Fprintln(w, "Invalid word, please try again.")
		case err != nil:
			return s.Outcome(), err
		case play == nil:
			fmt.Fprintf(w, "Goodbye! Total score: %d points.\n", s.score)
			return s.Outcome(), nil
		default:
			fmt.Fprintf(w, "\"%s\" earned %d points. Total: %d points\n",
				play.Word, play.Score, s.score)
		}
	}
}
