package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/decl-lang/decl"
	"github.com/decl-lang/decl/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report parse errors and unsupported constructs",
	Long: "Parse a script and print a diagnostic for every failure in the " +
		"result. Exits non-zero when the script has any failure. Reads " +
		"stdin when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, source, err := readSource(args)
		if err != nil {
			return err
		}
		result := decl.Build(source, decl.WithSourceName(name))
		diags := errors.Collect(result)
		log.Debug().Str("source", name).Int("diagnostics", len(diags)).
			Msg("checked script")
		if len(diags) == 0 {
			return nil
		}
		f := errors.NewFormatter(useColor())
		fmt.Fprint(os.Stderr, f.FormatAll(diags, source))
		return fmt.Errorf("%s: %d problem(s) found", name, len(diags))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
