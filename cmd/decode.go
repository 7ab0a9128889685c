package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/notes"
	"github.com/jsphweid/chordcompanion/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decodes a 4 byte frame",
		Long:  `Decodes a 4 byte frame such as "3c 00 02 02" and prints the chord and its notes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := util.ParseHex(args[0])
			if err != nil {
				return err
			}
			c, err := chord.Deserialize(buf)
			if err != nil {
				a.log.Error("could not decode frame", zap.Binary("frame", buf), zap.Error(err))
				return err
			}
			n, err := notes.Generate(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", c, n.Slice())
			return nil
		},
	}
}
