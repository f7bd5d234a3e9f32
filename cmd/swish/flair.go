package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swish-api/swish"
)

func newFlairCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "flair <flair>...",
		Short: "Parse user flairs like \"Flair {cssClass='Spurs1', text='Pop'}\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flairs := make([]swish.Flair, 0, len(args))
			for _, raw := range args {
				flairs = append(flairs, swish.ParseFlair(raw))
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), flairs)
			}
			for _, f := range flairs {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.Text, f.CSSClass, f.Asset); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of tab separated text")
	return cmd
}
