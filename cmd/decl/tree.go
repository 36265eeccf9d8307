package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/decl-lang/decl"
	"github.com/decl-lang/decl/printer"
)

var flagLight bool

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the language tree in canonical form",
	Long: "Parse a script and print the resulting language tree, including " +
		"any recorded failures, in the canonical text rendering. Reads " +
		"stdin when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, source, err := readSource(args)
		if err != nil {
			return err
		}
		build := decl.Build
		if flagLight {
			build = decl.BuildLight
		}
		log.Debug().Str("source", name).Bool("light", flagLight).
			Msg("building language tree")
		result := build(source, decl.WithSourceName(name))
		fmt.Println(printer.Print(result))
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&flagLight, "light", false,
		"use the light front end")
	rootCmd.AddCommand(treeCmd)
}
