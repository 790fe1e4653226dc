package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/goscales/midi"
	"github.com/jsphweid/goscales/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scaleMidiPath string

func init() {
	scaleCmd.Flags().StringVar(&scaleMidiPath, "midi", "", "also write the scale to this MIDI file")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <formula>",
	Short: "Prints the notes of a scale",
	Long: `Prints the notes of a scale. The formula is a preset name ("dorian",
"natural-minor") or a step pattern ("wwhwwwh").`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseScale(args[0], args[1])
		if err != nil {
			return err
		}
		printScale(s)

		if scaleMidiPath == "" {
			return nil
		}
		if err := midi.WriteScaleFile(scaleMidiPath, s, midi.DefaultOptions()); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"scale": s.Name(), "path": scaleMidiPath}).Info("wrote midi file")
		return nil
	},
}

func printScale(s scale.Scale) {
	d := describeScale(s)
	fmt.Println(d.Name)
	fmt.Printf("in scale:     %v\n", strings.Join(d.Notes, " "))
	fmt.Printf("not in scale: %v\n", strings.Join(d.NotesNotInScale, " "))
}
