package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/goscales/midi"
	"github.com/jsphweid/goscales/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inspectFormulas []string
	inspectFrom     uint64
	inspectMaxNotes int
)

func init() {
	inspectCmd.Flags().Uint64Var(&inspectFrom, "from-tick", 0, "ignore notes before this tick")
	inspectCmd.Flags().IntVar(&inspectMaxNotes, "max-notes", 0, "only consider this many notes per track (0 for all)")
	inspectCmd.Flags().StringSliceVar(&inspectFormulas, "formula", nil, "only consider these formulas (default all)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the scales a MIDI file fits in",
	Long:  `Collects every pitch class sounding in a MIDI file and lists the scales containing all of them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	formulas, err := parseFormulas(inspectFormulas)
	if err != nil {
		return err
	}

	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	if inspectFrom > 0 || inspectMaxNotes > 0 {
		s = midi.Excerpt(s, inspectFrom, inspectMaxNotes)
	}
	pcs, err := midi.PitchClasses(s)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"path": path, "tracks": len(s.Tracks)}).Debug("read midi file")

	var names []string
	for _, n := range pcs {
		names = append(names, n.Name())
	}
	fmt.Printf("pitch classes: %v\n", strings.Join(names, " "))

	matches := scale.Matching(pcs, formulas)
	if len(matches) == 0 {
		fmt.Println("no matching scales")
		return nil
	}
	for _, name := range scaleNames(matches) {
		fmt.Println(name)
	}
	return nil
}

func scaleNames(scales []scale.Scale) []string {
	res := make([]string, len(scales))
	for i, s := range scales {
		res[i] = s.Name()
	}
	return res
}
