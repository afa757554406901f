package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "word",
		Short: "Print the day's solution (spoiler)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.fetcher()
			if err != nil {
				return err
			}
			solution, err := f.FetchDailySolution(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), solution)
			return nil
		},
	}
}
