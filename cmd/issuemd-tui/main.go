package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"issuemd/internal/adapters/gitea"
	"issuemd/internal/adapters/tui"
	"issuemd/internal/config"
)

func main() {
	repoFlag := flag.String("repo", "", "Gitea repository URL")
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	if *repoFlag == "" {
		fmt.Fprintln(os.Stderr, "issuemd-tui: --repo is required")
		os.Exit(1)
	}

	settings, err := config.Load(config.Path(*configFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tracker, err := gitea.New(settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := tui.NewApp(tracker, *repoFlag)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
