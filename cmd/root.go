package cmd

import (
	"os"

	"github.com/jsphweid/chordcompanion/config"
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	debug      bool

	cfg config.Config
	log *zap.Logger
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// NewRootCmd builds the chordc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:               "chordc",
		Short:             "Chord companion",
		Long:              `Turns chord descriptions into MIDI notes and compact 4 byte frames.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv(constants.EnvConfigPath), "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "debug logging")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newSampleCmd(a),
	)
	return rootCmd
}

func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}
