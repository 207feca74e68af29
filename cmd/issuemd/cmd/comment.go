package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"issuemd/internal/application/commands"
)

var commentFromFile string

var commentCmd = &cobra.Command{
	Use:   "comment <repo-url> <issue> [text]",
	Short: "Add a comment to an issue",
	Long: `Add a comment to an issue. The comment text comes from the argument
or from a file via --from-file.

Examples:
  issuemd comment https://gitea.example.com/team/app 123 "Fixed in commit abc"
  issuemd comment https://gitea.example.com/team/app 123 --from-file reply.md`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIssueNumber(args[1])
		if err != nil {
			return err
		}
		text := ""
		if len(args) == 3 {
			text = args[2]
		}
		ctx := context.Background()

		commentCmd := commands.NewAddCommentCommand(GetTracker(), args[0], index, text, commentFromFile)
		result, err := commentCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.Flags().StringVar(&commentFromFile, "from-file", "", "read the comment text from a file")
}
