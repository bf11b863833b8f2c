package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talktrove",
	Short: "CLI Client for the TalkTrove server",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("TalkTrove server CLI. Try 'talktrove help'")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
