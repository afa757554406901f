package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/tui"
)

// runPlay fetches the solution, then hands the terminal to the game loop.
// A fetch failure ends the session before the screen is touched.
func runPlay(cmd *cobra.Command, opts *options) error {
	f, err := opts.fetcher()
	if err != nil {
		return err
	}
	solution, err := f.FetchDailySolution(cmd.Context())
	if err != nil {
		return err
	}
	board, err := game.NewBoard(solution)
	if err != nil {
		return err
	}

	screen, err := opts.screens()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	outcome := tui.NewApp(screen, board).Run()
	screen.Fini()

	log.Info().Stringer("outcome", outcome).Msg("game over")
	switch outcome {
	case game.Won:
		fmt.Fprintf(cmd.OutOrStdout(), "Solved in %d/%d\n", board.Attempts(), game.Rows)
	case game.Lost:
		fmt.Fprintf(cmd.OutOrStdout(), "Out of guesses. The word was %s\n", board.Solution())
	}
	return nil
}
