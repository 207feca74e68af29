package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"issuemd/internal/domain"
	"issuemd/internal/markdown"
	"issuemd/internal/ports"
)

// RegisterReadTools adds the read-only issue tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, tracker ports.Tracker) {
	s.AddTool(listIssuesTool(), listIssuesHandler(tracker))
	s.AddTool(previewIssueTool(), previewIssueHandler(tracker))
	s.AddTool(serverVersionTool(), serverVersionHandler(tracker))
}

// --- list_issues ---

func listIssuesTool() mcp.Tool {
	return mcp.NewTool("list_issues",
		mcp.WithDescription("List the open issues of a Gitea repository."),
		mcp.WithString("repo_url",
			mcp.Description("Repository URL, e.g. https://gitea.example.com/owner/repo"),
			mcp.Required(),
		),
	)
}

func listIssuesHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, repo, err := domain.ParseRepoURL(req.GetString("repo_url", ""))
		if err != nil {
			return toolError(err)
		}

		issues, err := tracker.ListOpenIssues(ctx, owner, repo)
		if err != nil {
			return toolError(err)
		}

		if len(issues) == 0 {
			return mcp.NewToolResultText("No open issues."), nil
		}

		var sb strings.Builder
		for _, issue := range issues {
			fmt.Fprintf(&sb, "#%d  %s\n", issue.Index, issue.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview_issue ---

func previewIssueTool() mcp.Tool {
	return mcp.NewTool("preview_issue",
		mcp.WithDescription("Render one open issue, with its comments, as the markdown block that sync would write."),
		mcp.WithString("repo_url",
			mcp.Description("Repository URL"),
			mcp.Required(),
		),
		mcp.WithNumber("issue",
			mcp.Description("Issue number"),
			mcp.Required(),
		),
	)
}

func previewIssueHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, repo, err := domain.ParseRepoURL(req.GetString("repo_url", ""))
		if err != nil {
			return toolError(err)
		}
		index := int64(req.GetInt("issue", 0))
		if index <= 0 {
			return toolError(fmt.Errorf("issue number must be positive"))
		}

		issues, err := tracker.ListOpenIssues(ctx, owner, repo)
		if err != nil {
			return toolError(err)
		}

		for _, issue := range issues {
			if issue.Index != index {
				continue
			}
			comments, err := tracker.ListComments(ctx, owner, repo, index)
			if err != nil {
				return toolError(err)
			}
			issue.Comments = comments
			return mcp.NewToolResultText(markdown.Render(issue)), nil
		}
		return toolError(fmt.Errorf("no open issue #%d in %s/%s", index, owner, repo))
	}
}

// --- server_version ---

func serverVersionTool() mcp.Tool {
	return mcp.NewTool("server_version",
		mcp.WithDescription("Report the Gitea server version."),
	)
}

func serverVersionHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		version, err := tracker.ServerVersion(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(version), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
