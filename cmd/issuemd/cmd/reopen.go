package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"issuemd/internal/application/commands"
)

var reopenCmd = &cobra.Command{
	Use:   "reopen <repo-url> <issue>",
	Short: "Reopen a closed issue",
	Long: `Reopen a closed issue by number.

Examples:
  issuemd reopen https://gitea.example.com/team/app 123`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIssueNumber(args[1])
		if err != nil {
			return err
		}
		ctx := context.Background()

		reopenCmd := commands.NewReopenIssueCommand(GetTracker(), args[0], index)
		result, err := reopenCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reopenCmd)
}
