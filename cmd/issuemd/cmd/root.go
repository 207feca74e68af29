package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"issuemd/internal/adapters/gitea"
	"issuemd/internal/config"
	"issuemd/internal/ports"
)

var (
	configPath string
	settings   config.Settings
	tracker    ports.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "issuemd",
	Short: "Sync Gitea issues into a markdown document",
	Long: `issuemd mirrors the open issues of a Gitea repository into a local
markdown file, embedding comments and attachments, and updates
previously written entries in place on re-run.

It also provides commands to comment on, close, and reopen issues.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		settings, err = config.Load(config.Path(configPath))
		if err != nil {
			return err
		}
		tracker, err = gitea.New(settings)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file (default: config.json)")
}

// GetTracker returns the initialized tracker
func GetTracker() ports.Tracker {
	return tracker
}

// parseIssueNumber parses a positive issue number argument
func parseIssueNumber(arg string) (int64, error) {
	index, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("invalid issue number: %s", arg)
	}
	return index, nil
}
