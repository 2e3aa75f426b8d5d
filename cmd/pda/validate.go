package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pda "github.com/horacekj/pda-emulator"
	"github.com/horacekj/pda-emulator/pkg/automaton"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a machine definition for consistency",
	Long:  `Compiles the machine document and reports undeclared states or symbols, bad initial or accepting configurations, and (with --strict) nondeterministic transition tables.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		strict, _ := cmd.Flags().GetBool("strict")

		var opts []automaton.Option
		if strict {
			opts = append(opts, automaton.WithStrictMode())
		}

		if _, err := pda.FromFile(args[0], opts...); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Machine is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Require a deterministic transition table")
}
