package cmd

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/goscales/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goscales",
	Short: "Notes, scales and intervals",
	Long: `goscales works with notes, scale formulas, scales and intervals, puts
scales on hardware keyboards and reads or writes them as MIDI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// SCALES_* settings may also come from a .env file
		_ = godotenv.Load()
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func setupLogging() error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return nil
	}
	level, err := logrus.ParseLevel(constants.GetLogLevel())
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
