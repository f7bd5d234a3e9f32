package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swish-api/swish"
)

func newTeamsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List team abbreviations, names and subreddits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := swish.Teams()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			for _, t := range all {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-24s\tr/%s\n", t.Abbr, t.Name, t.Subreddit); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
