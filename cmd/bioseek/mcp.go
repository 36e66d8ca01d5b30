package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/bioseek/bioseek/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP (Model Context Protocol) server",
	Long: `Start an MCP server for AI assistants like Claude Desktop and VS Code.

Supports two transport modes:
  stdio  (default)  Communicates over stdin/stdout using JSON-RPC 2.0.
  http              Starts an HTTP server using Streamable HTTP transport.

Tools provided:
  resolve_taxonomy          Resolve organism names and taxonomy IDs
  search_ena                Search the archive for sequencing data
  get_fastq_urls            FASTQ download URLs for a run
  get_study_details         Study metadata, batched
  search_workflows          Tested Galaxy workflows by category
  list_workflow_categories  Available workflow categories

Prompts provided:
  find_sequencing_data   Guided organism-to-download workflow
  plan_analysis          Match data to a cataloged workflow`,
	Example: `  # Run with stdio transport (default, used by MCP clients)
  bioseek mcp

  # Run with HTTP transport
  bioseek mcp --transport http --port 8081

  # Claude Desktop configuration (~/.claude/claude_desktop_config.json):
  {
    "mcpServers": {
      "bioseek": {
        "command": "bioseek",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

var (
	mcpTransport string
	mcpHost      string
	mcpPort      int
	mcpConfig    string
)

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport mode: stdio or http")
	mcpCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP server host (only used with --transport http)")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 8081, "HTTP server port (only used with --transport http)")
	mcpCmd.Flags().StringVar(&mcpConfig, "config", "", "Path to a YAML config file")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(mcpConfig)
	if err != nil {
		return fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	clients := mcpserver.NewClients(cfg)

	// Setup context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[MCP] Shutting down...")
		cancel()
	}()

	switch mcpTransport {
	case "stdio":
		return mcpserver.Run(ctx, version, clients)
	case "http":
		return mcpserver.RunHTTP(ctx, version, clients, mcpHost, mcpPort)
	default:
		return fail(fmt.Errorf("unknown transport %q (expected stdio or http)", mcpTransport))
	}
}
