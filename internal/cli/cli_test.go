package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// scriptedScreen is a simulation screen that replays queued keys, then
// reports a finalized screen.
type scriptedScreen struct {
	tcell.SimulationScreen
	keys []*tcell.EventKey
}

func (s *scriptedScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(80, 30)
	return nil
}

func (s *scriptedScreen) PollEvent() tcell.Event {
	if len(s.keys) == 0 {
		return nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func typed(word string) []*tcell.EventKey {
	var keys []*tcell.EventKey
	for _, r := range word {
		keys = append(keys, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return append(keys, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

type CLISuite struct {
	suite.Suite
	srv    *httptest.Server
	screen *scriptedScreen
	opened bool
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	r := chi.NewRouter()
	r.Get("/v2/2024-06-01.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"solution":"crane","print_date":"2024-06-01"}`))
	})
	r.Get("/v2/2024-06-02.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":8}`))
	})
	s.srv = httptest.NewServer(r)
	s.screen = &scriptedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
	s.opened = false
}

func (s *CLISuite) TearDownTest() {
	s.srv.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := newRootCmd(func() (tcell.Screen, error) {
		s.opened = true
		return s.screen, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{
		"--source", s.srv.URL + "/v2",
		"--log-file", filepath.Join(s.T().TempDir(), "wordle.log"),
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLISuite) TestScore() {
	out, err := s.run("score", "ELLEL", "level")

	s.Require().NoError(err)
	s.Equal("🟨🟨⬛🟩🟩  present present absent correct correct\n", out)
}

func (s *CLISuite) TestScoreLengthMismatch() {
	_, err := s.run("score", "cranes", "crane")

	s.ErrorIs(err, game.ErrLengthMismatch)
}

func (s *CLISuite) TestWord() {
	out, err := s.run("word", "--date", "2024-06-01")

	s.Require().NoError(err)
	s.Equal("crane\n", out)
}

func (s *CLISuite) TestWordBadDate() {
	_, err := s.run("word", "--date", "June 1st")

	s.Error(err)
}

func (s *CLISuite) TestPlayWin() {
	s.screen.keys = append(typed("adieu"), typed("crane")...)
	s.screen.keys = append(s.screen.keys, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	out, err := s.run("--date", "2024-06-01")

	s.Require().NoError(err)
	s.Equal("Solved in 2/6\n", out)
}

func (s *CLISuite) TestPlayQuitEarly() {
	s.screen.keys = []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	}

	out, err := s.run("--date", "2024-06-01")

	s.Require().NoError(err)
	s.Empty(out)
}

func (s *CLISuite) TestPlayFetchErrorSkipsTerminal() {
	_, err := s.run("--date", "2024-06-02")

	var fe *daily.FetchError
	s.Require().True(errors.As(err, &fe))
	s.ErrorIs(err, daily.ErrNoSolution)
	s.False(s.opened)
}
