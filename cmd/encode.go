package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(a *app) *cobra.Command {
	var flags chordFlags

	cmd := &cobra.Command{
		Use:   "encode [chord]",
		Short: "Prints the 4 byte frame of a chord",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.chord(cmd, args)
			if err != nil {
				return err
			}
			frame := chord.Serialize(c)
			a.log.Debug("encoded chord", zap.Stringer("chord", c), zap.Binary("frame", frame[:]))
			fmt.Fprintln(cmd.OutOrStdout(), util.FormatHex(frame[:]))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
