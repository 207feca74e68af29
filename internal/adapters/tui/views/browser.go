package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"issuemd/internal/adapters/tui/styles"
	"issuemd/internal/application/commands"
	"issuemd/internal/domain"
	"issuemd/internal/markdown"
	"issuemd/internal/ports"
)

// BrowserKeyMap defines key bindings for the issue browser
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Copy   key.Binding
	Close  key.Binding
	Reopen key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy markdown"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close issue"),
	),
	Reopen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "reopen issue"),
	),
	Reload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the issue browser view
type BrowserModel struct {
	tracker ports.Tracker
	repoURL string

	issues  []domain.Issue
	cursor  int
	loading bool
	spin    spinner.Model

	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(tracker ports.Tracker, repoURL string) *BrowserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &BrowserModel{
		tracker: tracker,
		repoURL: repoURL,
		loading: true,
		spin:    sp,
	}
}

type issuesLoadedMsg struct {
	issues []domain.Issue
}

type errMsg struct {
	err error
}

type actionDoneMsg struct {
	message string
}

// Init starts loading the issues
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadIssues)
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *BrowserModel) loadIssues() tea.Msg {
	owner, repo, err := domain.ParseRepoURL(m.repoURL)
	if err != nil {
		return errMsg{err}
	}

	ctx := context.Background()
	issues, err := m.tracker.ListOpenIssues(ctx, owner, repo)
	if err != nil {
		return errMsg{err}
	}

	// Comments are needed for the preview pane
	for i := range issues {
		comments, err := m.tracker.ListComments(ctx, owner, repo, issues[i].Index)
		if err != nil {
			return errMsg{err}
		}
		issues[i].Comments = comments
	}
	return issuesLoadedMsg{issues}
}

// Update handles messages for the browser view
func (m *BrowserModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case issuesLoadedMsg:
		m.loading = false
		m.issues = msg.issues
		if m.cursor >= len(m.issues) {
			m.cursor = 0
		}
		return nil

	case errMsg:
		m.loading = false
		m.message = msg.err.Error()
		m.messageErr = true
		return nil

	case actionDoneMsg:
		m.message = msg.message
		m.messageErr = false
		m.loading = true
		return tea.Batch(m.spin.Tick, m.loadIssues)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, BrowserKeys.Down):
		if m.cursor < len(m.issues)-1 {
			m.cursor++
		}

	case key.Matches(msg, BrowserKeys.Reload):
		m.loading = true
		m.message = ""
		return tea.Batch(m.spin.Tick, m.loadIssues)

	case key.Matches(msg, BrowserKeys.Copy):
		if issue, ok := m.selected(); ok {
			if err := clipboard.WriteAll(markdown.Render(issue)); err != nil {
				m.message = err.Error()
				m.messageErr = true
			} else {
				m.message = fmt.Sprintf("Copied issue #%d markdown", issue.Index)
				m.messageErr = false
			}
		}

	case key.Matches(msg, BrowserKeys.Close):
		if issue, ok := m.selected(); ok {
			return m.closeIssue(issue.Index)
		}

	case key.Matches(msg, BrowserKeys.Reopen):
		if issue, ok := m.selected(); ok {
			return m.reopenIssue(issue.Index)
		}
	}
	return nil
}

func (m *BrowserModel) selected() (domain.Issue, bool) {
	if len(m.issues) == 0 || m.cursor >= len(m.issues) {
		return domain.Issue{}, false
	}
	return m.issues[m.cursor], true
}

func (m *BrowserModel) closeIssue(index int64) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewCloseIssueCommand(m.tracker, m.repoURL, index)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{result.Message}
	}
}

func (m *BrowserModel) reopenIssue(index int64) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewReopenIssueCommand(m.tracker, m.repoURL, index)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{result.Message}
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.loading {
		return styles.App.Render(fmt.Sprintf("%s Fetching issues from %s...", m.spin.View(), m.repoURL))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Open issues"))
	b.WriteString("\n")

	if len(m.issues) == 0 {
		b.WriteString(styles.MutedText.Render("No open issues."))
	} else {
		listWidth := 40
		if m.width > 0 && m.width/2 < listWidth {
			listWidth = m.width / 2
		}
		list := m.renderList(listWidth)
		preview := m.renderPreview(listWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, preview))
	}

	b.WriteString("\n")
	if m.message != "" {
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderList(width int) string {
	var rows []string
	for i, issue := range m.issues {
		row := fmt.Sprintf("#%d %s", issue.Index, issue.Title)
		if len(row) > width {
			row = row[:width-1] + "…"
		}
		if i == m.cursor {
			rows = append(rows, styles.IssueSelected.Render(row))
		} else {
			rows = append(rows, styles.IssueRow.Render(row))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

func (m *BrowserModel) renderPreview(listWidth int) string {
	issue, ok := m.selected()
	if !ok {
		return ""
	}
	width := m.width - listWidth - 8
	if width < 20 {
		width = 20
	}
	return styles.Preview.Width(width).Render(markdown.Render(issue))
}

func (m *BrowserModel) helpLine() string {
	bindings := []key.Binding{
		BrowserKeys.Up,
		BrowserKeys.Down,
		BrowserKeys.Copy,
		BrowserKeys.Close,
		BrowserKeys.Reopen,
		BrowserKeys.Reload,
		BrowserKeys.Quit,
	}
	var parts []string
	for _, b := range bindings {
		parts = append(parts, styles.HelpKey.Render(b.Help().Key)+" "+styles.HelpDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, styles.MutedText.Render(" • "))
}
