package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swish-api/core/gamethread"
)

// errNoGameThread is returned when the listing holds no matching thread
var errNoGameThread = errors.New("no game thread found")

func newGameThreadCmd(s *settings) *cobra.Command {
	var home, away, threadType, subreddit string

	cmd := &cobra.Command{
		Use:   "gamethread",
		Short: "Find the live or post game thread for a matchup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tt, ok := gamethread.ParseThreadType(threadTypeTag(threadType))
			if !ok {
				return fmt.Errorf("unknown thread type %q: want live or post", threadType)
			}

			client, err := s.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			id, err := client.FindGameThread(cmd.Context(), subreddit, tt, home, away)
			if err != nil {
				return err
			}
			if id == "" {
				return errNoGameThread
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home team abbreviation, e.g. sas")
	cmd.Flags().StringVar(&away, "away", "", "away team abbreviation, e.g. cle")
	cmd.Flags().StringVar(&threadType, "type", "live", "thread type: live or post")
	cmd.Flags().StringVar(&subreddit, "subreddit", "nba", "subreddit to search")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	return cmd
}

// threadTypeTag accepts the short names as well as the full tags
func threadTypeTag(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "live":
		return "LIVE_GAME_THREAD"
	case "post":
		return "POST_GAME_THREAD"
	}
	return name
}
