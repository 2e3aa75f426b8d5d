package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pda "github.com/horacekj/pda-emulator"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pda",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pda version %s\n", strings.TrimSpace(pda.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
