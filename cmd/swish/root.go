// ABOUTME: Root cobra command and shared settings for the swish CLI
// ABOUTME: Binds persistent flags and SWISH_* environment variables through viper

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"swish-api/infrastructure/logger/leveled"
	"swish-api/swish"
)

const envPrefix = "SWISH"

// settings are the persistent options shared by every subcommand
type settings struct {
	v *viper.Viper
}

func (s *settings) clientOptions(extra ...swish.Option) []swish.Option {
	opts := []swish.Option{
		swish.WithTheme(s.v.GetString("theme")),
		swish.WithBaseURL(s.v.GetString("base-url")),
	}
	if s.v.GetBool("verbose") {
		opts = append(opts, swish.WithLogger(leveled.New(leveled.Options{Level: "debug"})))
	} else {
		opts = append(opts, swish.WithQuietMode())
	}
	return append(opts, extra...)
}

func (s *settings) newClient(extra ...swish.Option) (*swish.Client, error) {
	return swish.NewClient(s.clientOptions(extra...)...)
}

// NewRootCmd constructs the root command and its subcommands
func NewRootCmd() *cobra.Command {
	s := &settings{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "swish",
		Short:         "Render /r/nba bodies, parse flairs and find game threads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.v.SetEnvPrefix(envPrefix)
			s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			s.v.AutomaticEnv()
			return s.v.BindPFlags(cmd.Flags())
		},
	}

	cmd.PersistentFlags().String("theme", "DARK", "table theme: LIGHT or DARK")
	cmd.PersistentFlags().String("base-url", "https://www.reddit.com", "Reddit host feeds are read from")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log requests to stdout")

	cmd.AddCommand(newRenderCmd(s))
	cmd.AddCommand(newFlairCmd())
	cmd.AddCommand(newGameThreadCmd(s))
	cmd.AddCommand(newTeamsCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}
