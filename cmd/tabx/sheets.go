package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/tabx"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <file.xlsx>",
	Short: "List the worksheets in a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := tabx.Open(args[0])
		if err != nil {
			return err
		}
		active := reader.Worksheet()
		for _, title := range reader.Worksheets() {
			marker := " "
			if title == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}
