package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/testhelpers"
)

func newTestSession(hand string, n int) *Session {
	return NewSession(SessionConfig{
		HandSize: n,
		Lexicon:  testhelpers.SmallLexicon(),
	}, alphabet.HandFromString(hand))
}

func TestSubmitValidWord(t *testing.T) {
	is := is.New(t)
	s := newTestSession("ab", 2)
	play, err := s.Submit("a")
	is.NoErr(err)
	is.Equal(*play, Play{Word: "a", Score: Score("a", 2, alphabet.EnglishLetterValues())})
	is.Equal(s.Score(), 1)
	is.Equal(s.Hand().Count('a'), 0)
	is.Equal(s.Hand().Count('b'), 1)
	is.Equal(s.Hand().NumTiles(), 1)
	is.Equal(s.State(), Active)
	is.True(!s.CheckExhausted())
}

func TestSubmitDoesNotTouchCallerHand(t *testing.T) {
	is := is.New(t)
	hand := alphabet.HandFromString("acty")
	s := NewSession(SessionConfig{HandSize: 4, Lexicon: testhelpers.SmallLexicon()}, hand)
	_, err := s.Submit("cat")
	is.NoErr(err)
	is.Equal(hand.String(), "a c t y")
	is.Equal(s.Hand().String(), "y")
}

func TestSubmitInvalidInput(t *testing.T) {
	is := is.New(t)
	s := newTestSession("acty", 4)
	cases := []struct {
		line string
		err  error
	}{
		{"", ErrMalformedWord},
		{"c4t", ErrMalformedWord},
		{"cat!", ErrMalformedWord},
		{" cat", ErrMalformedWord},
		{"..", ErrMalformedWord},
		{"CAT", ErrRejectedWord},
		{"tact", ErrRejectedWord},
		{"tac", ErrRejectedWord},
		{"zzz", ErrRejectedWord},
	}
	for _, tc := range cases {
		play, err := s.Submit(tc.line)
		is.True(play == nil)
		is.True(errors.Is(err, tc.err))
	}
	is.Equal(s.Score(), 0)
	is.Equal(s.Hand().String(), "a c t y")
	is.Equal(s.State(), Active)
	is.Equal(len(s.Plays()), 0)
}

func TestSubmitQuit(t *testing.T) {
	is := is.New(t)
	s := newTestSession("acty", 4)
	_, err := s.Submit("cat")
	is.NoErr(err)
	play, err := s.Submit(QuitSentinel)
	is.NoErr(err)
	is.True(play == nil)
	is.Equal(s.State(), Quit)
	o := s.Outcome()
	is.Equal(o.State, Quit)
	is.Equal(o.Score, 15)
	is.Equal(o.Hand.String(), "y")

	_, err = s.Submit("y")
	is.True(errors.Is(err, ErrSessionOver))
}

func TestExhaustedRegardlessOfInput(t *testing.T) {
	is := is.New(t)
	s := newTestSession("act", 3)
	play, err := s.Submit("cat")
	is.NoErr(err)
	is.Equal(play.Score, 5*3+BingoBonus)
	is.Equal(s.State(), Active)

	for _, line := range []string{"cat", ".", "", "!!"} {
		_, err = s.Submit(line)
		is.True(errors.Is(err, ErrSessionOver))
		is.Equal(s.State(), Exhausted)
	}
	is.Equal(s.Outcome().Hand.NumTiles(), 0)
}

func TestEmptyHandIsExhaustedImmediately(t *testing.T) {
	is := is.New(t)
	s := newTestSession("", 0)
	is.True(s.CheckExhausted())
	is.Equal(s.State(), Exhausted)
}

func TestBonusOnlyOnFullOriginalHand(t *testing.T) {
	is := is.New(t)
	// "tact" has length 4 = remaining letters after "a", but the hand was
	// dealt at 5, so there is no bonus.
	s := newTestSession("aactt", 5)
	_, err := s.Submit("a")
	is.NoErr(err)
	play, err := s.Submit("tact")
	is.NoErr(err)
	is.Equal(play.Score, 24)
	is.Equal(s.Score(), 25)
	is.True(s.CheckExhausted())
}

func TestRunUntilExhausted(t *testing.T) {
	is := is.New(t)
	s := newTestSession("aactt", 5)
	p := testhelpers.NewScriptedPrompter("xyz", "a", "tact", "never read")
	var out bytes.Buffer

	o, err := s.Run(p, &out)
	is.NoErr(err)
	is.Equal(o.State, Exhausted)
	is.Equal(o.Score, 25)
	is.Equal(o.Plays, []Play{{"a", 1}, {"tact", 24}})
	is.Equal(o.Hand.NumTiles(), 0)
	is.Equal(p.Remaining(), 1)

	expected := strings.Join([]string{
		"Current Hand: a a c t t",
		"Invalid word, please try again.",
		"Current Hand: a a c t t",
		`"a" earned 1 points. Total: 1 points`,
		"Current Hand: a c t t",
		`"tact" earned 24 points. Total: 25 points`,
		"Run out of letters. Total score: 25 points.",
		"",
	}, "\n")
	is.Equal(out.String(), expected)
	is.Equal(p.Prompts[0], wordPrompt)
}

func TestRunQuit(t *testing.T) {
	is := is.New(t)
	s := newTestSession("acty", 4)
	p := testhelpers.NewScriptedPrompter("cat", "1234", ".")
	var out bytes.Buffer

	o, err := s.Run(p, &out)
	is.NoErr(err)
	is.Equal(o.State, Quit)
	is.Equal(o.Score, 15)
	is.Equal(o.Hand.String(), "y")
	is.True(strings.HasSuffix(out.String(), "Goodbye! Total score: 15 points.\n"))
}

func TestRunPrompterError(t *testing.T) {
	is := is.New(t)
	s := newTestSession("acty", 4)
	p := testhelpers.NewScriptedPrompter("at")
	var out bytes.Buffer

	o, err := s.Run(p, &out)
	is.True(errors.Is(err, io.EOF))
	is.Equal(o.State, Active)
	is.Equal(o.Score, 4)
	is.Equal(o.Hand.String(), "c y")
}

func TestStateString(t *testing.T) {
	is := is.New(t)
	is.Equal(Active.String(), "active")
	is.Equal(Exhausted.String(), "exhausted")
	is.Equal(Quit.String(), "quit")
	is.Equal(State(9).String(), "State(9)")
}
