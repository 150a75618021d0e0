package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newProposalCmd)
	rootCmd.AddCommand(selectProposalCmd)
	rootCmd.AddCommand(cancelProposalCmd)
	rootCmd.AddCommand(updateStatusCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(queryCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
