package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"issuemd/internal/application/commands"
)

var (
	closeMessage     string
	closeMessageFile string
)

var closeCmd = &cobra.Command{
	Use:   "close <repo-url> <issue>",
	Short: "Close an issue",
	Long: `Close an issue by number, optionally leaving a closing comment
first via --message or --message-file.

Examples:
  issuemd close https://gitea.example.com/team/app 123
  issuemd close https://gitea.example.com/team/app 123 --message "Fixed in v1.2"
  issuemd close https://gitea.example.com/team/app 123 --message-file resolution.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIssueNumber(args[1])
		if err != nil {
			return err
		}
		ctx := context.Background()

		closeCmd := commands.NewCloseIssueCommand(GetTracker(), args[0], index)
		closeCmd.Comment = closeMessage
		closeCmd.CommentFile = closeMessageFile

		result, err := closeCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
	closeCmd.Flags().StringVar(&closeMessage, "message", "", "closing comment text")
	closeCmd.Flags().StringVar(&closeMessageFile, "message-file", "", "read the closing comment from a file")
}
