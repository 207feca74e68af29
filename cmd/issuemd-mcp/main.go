package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"issuemd/internal/adapters/gitea"
	mcpadapter "issuemd/internal/adapters/mcp"
	"issuemd/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	settings, err := config.Load(config.Path(*configFlag))
	if err != nil {
		log.Fatalf("issuemd-mcp: %v", err)
	}

	tracker, err := gitea.New(settings)
	if err != nil {
		log.Fatalf("issuemd-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"issuemd-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check; returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, tracker)
	mcpadapter.RegisterWriteTools(mcpServer, tracker)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("issuemd-mcp: %v", err)
	}
}
