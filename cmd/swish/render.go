package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"swish-api/core/domain"
	"swish-api/swish"
)

const (
	formatJSON     = "json"
	formatText     = "text"
	formatMarkdown = "markdown"
)

func newRenderCmd(s *settings) *cobra.Command {
	var bodyType string
	var format string

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Split a raw body into table and text blocks",
		Long:  "Reads a raw Reddit body from a file, or stdin when the file is omitted or -, and prints its blocks.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, err := domain.ParseBodyType(bodyType)
			if err != nil {
				return err
			}
			switch format {
			case formatJSON, formatText, formatMarkdown:
			default:
				return fmt.Errorf("unknown format %q: want json, text or markdown", format)
			}

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			client, err := s.newClient(swish.WithMarkdown(format == formatMarkdown))
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			if swish.IsRemoved(strings.TrimSpace(raw)) {
				if format == formatJSON {
					return writeJSON(out, map[string]interface{}{"removed": true, "blocks": []swish.Block{}})
				}
				_, err := fmt.Fprintln(out, "[removed]")
				return err
			}

			blocks := client.RenderBody(raw, bt)
			if format == formatJSON {
				return writeJSON(out, map[string]interface{}{"removed": false, "blocks": blocks})
			}
			return writeBlocks(out, blocks, format)
		},
	}
	cmd.Flags().StringVarP(&bodyType, "type", "t", "SUBMISSION", "body type: SUBMISSION or COMMENT")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: json, text or markdown")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBlocks(w io.Writer, blocks []swish.Block, format string) error {
	for _, b := range blocks {
		var err error
		switch {
		case b.IsTable():
			_, err = fmt.Fprintf(w, "[table %s]\n%s\n", b.BorderAsset, b.StyledHTML)
		case format == formatMarkdown && b.Markdown != "":
			_, err = fmt.Fprintln(w, b.Markdown)
		case b.Text != "":
			_, err = fmt.Fprintln(w, b.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
