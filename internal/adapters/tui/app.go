package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"issuemd/internal/adapters/tui/views"
	"issuemd/internal/ports"
)

// App is the main TUI application model
type App struct {
	browser *views.BrowserModel
}

// NewApp creates a new TUI application for browsing a repository's issues
func NewApp(tracker ports.Tracker, repoURL string) *App {
	return &App{
		browser: views.NewBrowserModel(tracker, repoURL),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.browser.SetSize(size.Width, size.Height)
		return a, nil
	}
	return a, a.browser.Update(msg)
}

// View renders the application
func (a *App) View() string {
	return a.browser.View()
}
