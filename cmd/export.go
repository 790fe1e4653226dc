package cmd

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/midi"
	"github.com/jsphweid/goscales/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	exportBPM  float64
	exportVelo uint8
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default a random name in $SCALES_EXPORT_DIR)")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", midi.DefaultOptions().BPM, "tempo")
	exportCmd.Flags().Uint8Var(&exportVelo, "velocity", midi.DefaultOptions().Velocity, "note velocity")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <formula>",
	Short: "Writes a scale as a MIDI file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseScale(args[0], args[1])
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			dir := constants.GetExportDir()
			if err := util.EnsureDir(dir); err != nil {
				return err
			}
			path = filepath.Join(dir, uuid.New().String()+".mid")
		}

		opts := midi.DefaultOptions()
		opts.BPM = exportBPM
		opts.Velocity = exportVelo
		if err := midi.WriteScaleFile(path, s, opts); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"scale": s.Name(), "path": path}).Info("wrote midi file")
		return nil
	},
}
