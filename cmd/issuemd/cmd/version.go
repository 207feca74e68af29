package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the Gitea server version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := GetTracker().ServerVersion(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Gitea version: %s\n", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
