package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS SOLUTION",
		Short: "Score a guess against a solution",
		Example: `  wordle score ellel level
  🟨🟨⬛🟩🟩  present present absent correct correct`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts, err := game.Score(args[0], args[1])
			if err != nil {
				return fmt.Errorf("score %q against %q: %w", args[0], args[1], err)
			}
			names := make([]string, len(verdicts))
			for i, v := range verdicts {
				names[i] = v.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", verdicts.Emoji(), strings.Join(names, " "))
			return nil
		},
	}
}
