package cmd

import (
	"os"

	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/notes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSampleCmd(a *app) *cobra.Command {
	var flags chordFlags
	var outPath string
	var quarters uint32

	cmd := &cobra.Command{
		Use:   "sample [chord]",
		Short: "Writes a MIDI file holding the chord",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.chord(cmd, args)
			if err != nil {
				return err
			}
			n, err := notes.Generate(c)
			if err != nil {
				return err
			}

			opts := midi.SampleOptions{
				Voice:           midi.Voice{Channel: a.cfg.Channel, Velocity: a.cfg.Velocity},
				TicksPerQuarter: a.cfg.TicksPerQuarter,
				BPM:             a.cfg.BPM,
				Quarters:        quarters,
			}

			w := cmd.OutOrStdout()
			if outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return errors.Wrap(err, "could not create sample file")
				}
				defer f.Close()
				w = f
			}

			if err := midi.WriteSample(w, c, n, opts); err != nil {
				return err
			}
			a.log.Info("wrote sample", zap.Stringer("chord", c), zap.String("path", outPath))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().Uint32Var(&quarters, "quarters", 4, "how many quarter notes to hold the chord")
	return cmd
}
