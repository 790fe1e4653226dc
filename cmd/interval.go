package cmd

import (
	"fmt"

	"github.com/jsphweid/goscales/interval"
	"github.com/jsphweid/goscales/model"
	"github.com/spf13/cobra"
)

var (
	intervalRoot    string
	intervalFormula string
)

func init() {
	intervalCmd.Flags().StringVar(&intervalRoot, "root", "", "scale root, defaults to the first note")
	intervalCmd.Flags().StringVar(&intervalFormula, "formula", "major", "scale formula")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <note1> <note2>",
	Short: "Classifies the interval between two notes",
	Long: `Classifies the interval between two notes of a scale, e.g.
"goscales interval F4 B4 --root C" prints an augmented fourth.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := classify(model.IntervalRequestBody{
			Note1:   args[0],
			Note2:   args[1],
			Root:    intervalRoot,
			Formula: intervalFormula,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%v (%v): %v semitones over %v staff positions, %v\n",
			res.Name, res.Notation, res.Semitones, res.StaffPositions, res.Consonance)
		return nil
	},
}

func classify(req model.IntervalRequestBody) (model.IntervalResponse, error) {
	n1, err := parseNote(req.Note1)
	if err != nil {
		return model.IntervalResponse{}, err
	}
	n2, err := parseNote(req.Note2)
	if err != nil {
		return model.IntervalResponse{}, err
	}

	root := req.Root
	if root == "" {
		root = n1.String()
	}
	f := req.Formula
	if f == "" {
		f = "major"
	}
	s, err := parseScale(root, f)
	if err != nil {
		return model.IntervalResponse{}, err
	}

	i, err := interval.Between(n1, n2, s)
	if err != nil {
		return model.IntervalResponse{}, fmt.Errorf("in %v: %w", s.Name(), err)
	}
	return describeInterval(i), nil
}

