package cmd

import (
	"fmt"

	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/keyboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(keyboardsCmd)
}

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Lists the built in scale formulas",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range formula.All {
			fmt.Println(f)
		}
	},
}

var keyboardsCmd = &cobra.Command{
	Use:   "keyboards",
	Short: "Lists the built in keyboards and their layouts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kb := range keyboard.All {
			fmt.Println(kb)
			fmt.Println(kb.RenderKeys())
			fmt.Println(kb.RenderNotes(true))
			fmt.Println()
		}
	},
}
