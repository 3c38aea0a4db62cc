package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopsearch",
	Short: "ShopSearch CLI — catalog import, cron jobs, maintenance",
}

// Execute runs the CLI after merging in registered custom commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
