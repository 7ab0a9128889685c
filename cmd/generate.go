package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/notes"
	"github.com/jsphweid/chordcompanion/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	var flags chordFlags
	var showIntervals, showMidi bool

	cmd := &cobra.Command{
		Use:   "generate [chord]",
		Short: "Prints the notes of a chord",
		Long:  `Prints the notes of a chord, e.g. "generate Eb4m7/1" or "generate --root 60 --color 9".`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.chord(cmd, args)
			if err != nil {
				return err
			}

			n, err := notes.Generate(c)
			if err != nil {
				a.log.Error("could not generate notes", zap.Stringer("chord", c), zap.Error(err))
				return err
			}
			a.log.Debug("generated notes", zap.Stringer("chord", c), zap.Uint8s("notes", n.Slice()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v: %v\n", c, n.Slice())

			if showIntervals {
				intervals, err := notes.Intervals(c.Quality, c.Color)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "intervals: %v\n", intervals)
			}

			if showMidi {
				voice := midi.Voice{Channel: a.cfg.Channel, Velocity: a.cfg.Velocity}
				ons, err := midi.NoteOns(n, voice)
				if err != nil {
					return err
				}
				offs, err := midi.NoteOffs(n, voice)
				if err != nil {
					return err
				}
				for _, msg := range ons {
					fmt.Fprintf(out, "on:  %s\n", util.FormatHex(msg))
				}
				for _, msg := range offs {
					fmt.Fprintf(out, "off: %s\n", util.FormatHex(msg))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showIntervals, "intervals", false, "also print the intervals above the root")
	cmd.Flags().BoolVar(&showMidi, "midi", false, "also print NoteOn/NoteOff messages as hex")
	return cmd
}
