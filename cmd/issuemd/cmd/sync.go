package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"issuemd/internal/adapters/filesystem"
	"issuemd/internal/application"
	"issuemd/internal/application/commands"
)

var completeFile string

var syncCmd = &cobra.Command{
	Use:   "sync <repo-url> <target-file>",
	Short: "Sync open issues into a markdown file",
	Long: `Fetch all open issues of a repository, including comments and
attachments, and merge them into the target markdown file. Entries
already present are updated in place; unrelated content is left
untouched. Attachments are downloaded next to the target file, under
attachments/issue_<id>/.

Examples:
  issuemd sync https://gitea.example.com/team/app notes/issues.md
  issuemd sync https://gitea.example.com/team/app issues.md --complete done.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoURL, targetFile := args[0], args[1]
		ctx := context.Background()

		owner, repo, err := application.ParseRepoURL(repoURL)
		if err != nil {
			return err
		}
		fmt.Printf("Repository: %s/%s\n", owner, repo)

		version, err := GetTracker().ServerVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Gitea version: %s\n", version)

		store := filesystem.NewStore(targetFile)
		syncCmd := commands.NewSyncCommand(GetTracker(), store, repoURL)
		syncCmd.ExcludePath = completeFile

		result, err := syncCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if result.Attachments > 0 {
			fmt.Printf("Downloaded %d attachment(s)\n", result.Attachments)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&completeFile, "complete", "", "file whose issue markers exclude those issues from the sync")
}
