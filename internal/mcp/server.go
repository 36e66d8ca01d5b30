// Package mcp exposes the clients as Model Context Protocol tools so that
// AI agents can call them directly. Each tool is a stateless wrapper around
// one client operation; the server keeps no session state between calls.
package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/iwc"
	"github.com/bioseek/bioseek/internal/study"
	"github.com/bioseek/bioseek/internal/taxonomy"
)

// Clients holds the client dependencies for the MCP server.
type Clients struct {
	Taxonomy  *taxonomy.Client
	Archive   *ena.Client
	Studies   *study.Client
	Workflows *iwc.Client
}

// NewClients builds the full client set from one configuration.
func NewClients(cfg *config.Config) *Clients {
	return &Clients{
		Taxonomy:  taxonomy.NewClient(cfg),
		Archive:   ena.NewClient(cfg),
		Studies:   study.NewClient(cfg),
		Workflows: iwc.NewClient(cfg),
	}
}

// NewServer creates a configured MCP server with all tools and prompts.
func NewServer(version string, clients *Clients) *gomcp.Server {
	server := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "bioseek",
			Version: version,
		},
		nil,
	)

	registerTools(server, clients)
	registerPrompts(server)

	return server
}

// Run creates and starts the MCP server on stdio transport.
// All log output is redirected to stderr so stdout remains clean for MCP JSON-RPC.
func Run(ctx context.Context, version string, clients *Clients) error {
	// stdout is the MCP transport — all logging must go to stderr
	log.SetOutput(os.Stderr)

	server := NewServer(version, clients)
	return server.Run(ctx, &gomcp.StdioTransport{})
}

// RunHTTP creates and starts the MCP server on Streamable HTTP transport.
func RunHTTP(ctx context.Context, version string, clients *Clients, host string, port int) error {
	server := NewServer(version, clients)

	handler := gomcp.NewStreamableHTTPHandler(
		func(r *http.Request) *gomcp.Server { return server },
		nil,
	)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("[MCP] HTTP server listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
