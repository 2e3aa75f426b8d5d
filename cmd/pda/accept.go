package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	pda "github.com/horacekj/pda-emulator"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <file> <input>",
	Short: "Decide whether the machine accepts an input string",
	Long:  `Compiles the machine document and runs the acceptance decision. Exits 0 when the input is accepted, 1 when it is rejected.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := loggerFromFlags(cmd)

		machine, err := pda.FromFile(args[0])
		if err != nil {
			fmt.Printf("Failed to load machine: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("machine compiled", "file", args[0], "states", len(machine.States()))

		accepted, err := machine.Accepts(args[1])
		if err != nil {
			fmt.Printf("Query failed: %v\n", err)
			os.Exit(1)
		}

		out := termenv.NewOutput(os.Stdout)
		if accepted {
			fmt.Println(out.String("ACCEPT").Foreground(out.Color("2")).Bold())
			return
		}
		fmt.Println(out.String("REJECT").Foreground(out.Color("1")).Bold())
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(acceptCmd)
}
