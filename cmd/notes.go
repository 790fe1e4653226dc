package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <note>...",
	Short: "Prints MIDI values and frequencies",
	Long:  `Prints the MIDI value and frequency of each note, e.g. "goscales notes A4 Db3 g"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			n, err := parseNote(arg)
			if err != nil {
				return err
			}
			d := describeNote(n)
			midi := "-"
			if d.Midi != nil {
				midi = fmt.Sprintf("%v", *d.Midi)
			}
			fmt.Printf("%-5v midi: %-4v frequency: %.2f\n", n, midi, d.Frequency)
		}
		return nil
	},
}
