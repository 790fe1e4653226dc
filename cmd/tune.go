package cmd

import (
	"fmt"

	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
	"github.com/spf13/cobra"
)

var (
	tuneKeyboard string
	tuneFormulas []string
)

func init() {
	tuneCmd.Flags().StringVarP(&tuneKeyboard, "keyboard", "k", "", "keyboard name or alias (default $SCALES_KEYBOARD or the OP-1)")
	tuneCmd.Flags().StringSliceVarP(&tuneFormulas, "formula", "f",
		[]string{formula.Major.Name(), formula.NaturalMinor.Name()}, "formulas to tune for")
	rootCmd.AddCommand(tuneCmd)
}

var tuneCmd = &cobra.Command{
	Use:   "tune [root...]",
	Short: "Finds the tuning that puts a scale on the white keys",
	Long: `For every root (all twelve by default) and formula, finds the smallest
transposition of the keyboard that puts the scale on white keys only and draws it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tuneKeyboard == "" {
			tuneKeyboard = constants.GetKeyboardName()
		}
		kb, err := parseKeyboard(tuneKeyboard)
		if err != nil {
			return err
		}
		formulas, err := parseFormulas(tuneFormulas)
		if err != nil {
			return err
		}

		roots := args
		if len(roots) == 0 {
			roots = note.ChromaticOrder[:]
		}

		fmt.Println(kb)
		for _, root := range roots {
			n, err := parseNote(root)
			if err != nil {
				return err
			}
			for _, f := range formulas {
				s := scale.New(n, f)
				res, ok := tune(kb, s)
				if !ok {
					fmt.Printf("\n%v: no tuning puts it on white keys\n", s.Name())
					continue
				}
				fmt.Printf("\n%v: tune %+d\n%v\n%v\n", res.Scale, res.Tuning, res.Keys, res.Notes)
			}
		}
		return nil
	},
}
