package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of vamsa",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vamsa %s\n", Version)
		},
	}
}
