package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/notes"
	"github.com/jsphweid/chordcompanion/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInspectCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "inspect [hex]",
		Short: "Inspects a stream of chord frames",
		Long:  `Inspects concatenated 4 byte chord frames given as hex, or read from stdin.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			if len(args) == 1 {
				input = []byte(args[0])
			} else {
				var err error
				input, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "could not read stdin")
				}
			}

			buf := input
			if !raw {
				var err error
				buf, err = util.ParseHex(string(input))
				if err != nil {
					return err
				}
			}

			chords, err := chord.DeserializeMany(buf)
			if err != nil {
				return err
			}
			a.log.Debug("inspecting frames", zap.Int("count", len(chords)))

			out := cmd.OutOrStdout()
			for i, c := range chords {
				n, err := notes.Generate(c)
				if err != nil {
					fmt.Fprintf(out, "%d: %v: %v\n", i, c, err)
					continue
				}
				fmt.Fprintf(out, "%d: %v: %v\n", i, c, n.Slice())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "read stdin as raw bytes instead of hex")
	return cmd
}
