package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"issuemd/internal/adapters/filesystem"
	"issuemd/internal/application/commands"
	"issuemd/internal/ports"
)

// RegisterWriteTools adds tools that modify issues or the local document.
func RegisterWriteTools(s *server.MCPServer, tracker ports.Tracker) {
	s.AddTool(syncTool(), syncHandler(tracker))
	s.AddTool(addCommentTool(), addCommentHandler(tracker))
	s.AddTool(closeIssueTool(), closeIssueHandler(tracker))
	s.AddTool(reopenIssueTool(), reopenIssueHandler(tracker))
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Sync a repository's open issues, with comments and attachments, into a markdown file."),
		mcp.WithString("repo_url",
			mcp.Description("Repository URL"),
			mcp.Required(),
		),
		mcp.WithString("target_file",
			mcp.Description("Path of the markdown file to merge issues into"),
			mcp.Required(),
		),
		mcp.WithString("complete_file",
			mcp.Description("Optional markdown file whose issue markers exclude those issues from the sync"),
		),
	)
}

func syncHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		targetFile := req.GetString("target_file", "")
		if targetFile == "" {
			return toolError(fmt.Errorf("target_file is required"))
		}

		store := filesystem.NewStore(targetFile)
		cmd := commands.NewSyncCommand(tracker, store, req.GetString("repo_url", ""))
		cmd.ExcludePath = req.GetString("complete_file", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_comment ---

func addCommentTool() mcp.Tool {
	return mcp.NewTool("add_comment",
		mcp.WithDescription("Add a comment to an issue."),
		mcp.WithString("repo_url",
			mcp.Description("Repository URL"),
			mcp.Required(),
		),
		mcp.WithNumber("issue",
			mcp.Description("Issue number"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Comment text"),
			mcp.Required(),
		),
	)
}

func addCommentHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddCommentCommand(tracker,
			req.GetString("repo_url", ""),
			int64(req.GetInt("issue", 0)),
			req.GetString("text", ""),
			"",
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- close_issue ---

func closeIssueTool() mcp.Tool {
	return mcp.NewTool("close_issue",
		mcp.WithDescription("Close an issue, optionally leaving a closing comment first."),
		mcp.WithString("repo_url",
			mcp.Description("Repository URL"),
			mcp.Required(),
		),
		mcp.WithNumber("issue",
			mcp.Description("Issue number"),
			mcp.Required(),
		),
		mcp.WithString("comment",
			mcp.Description("Optional closing comment"),
		),
	)
}

func closeIssueHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCloseIssueCommand(tracker,
			req.GetString("repo_url", ""),
			int64(req.GetInt("issue", 0)),
		)
		cmd.Comment = req.GetString("comment", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reopen_issue ---

func reopenIssueTool() mcp.Tool {
	return mcp.NewTool("reopen_issue",
		mcp.WithDescription("Reopen a closed issue."),
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

func reopenIssueHandler(tracker ports.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewReopenIssueCommand(tracker,
			req.GetString("repo_url", ""),
			int64(req.GetInt("issue", 0)),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
