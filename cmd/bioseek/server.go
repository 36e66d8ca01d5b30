package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/api"
	"github.com/bioseek/bioseek/internal/config"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the REST API server",
	Long: `Start the bioseek REST API server. Every endpoint is a stateless proxy
to the public archive APIs; the server holds no data of its own.

Endpoints:
  GET /api/v1/taxonomy/suggest/{name}   Resolve an organism name
  GET /api/v1/taxonomy/{taxID}          Look up a taxonomy ID
  GET /api/v1/search                    Search the archive
  GET /api/v1/fastq/{run}               FASTQ download URLs for a run
  GET /api/v1/studies/{accession}       Study metadata
  GET /api/v1/studies?accessions=...    Batch study metadata
  GET /api/v1/workflows                 Tested Galaxy workflows
  GET /api/v1/workflows/categories      Workflow categories
  GET /api/v1/health                    Health check`,
	Example: `  bioseek server
  bioseek server --port 3000
  bioseek server --host 127.0.0.1 --config bioseek.yaml`,
	RunE: runServer,
}

var (
	serverPort   int
	serverHost   string
	serverCORS   bool
	serverConfig string
)

func init() {
	serverCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Port to listen on")
	serverCmd.Flags().StringVar(&serverHost, "host", "0.0.0.0", "Host to bind to")
	serverCmd.Flags().BoolVar(&serverCORS, "enable-cors", true, "Enable CORS for web access")
	serverCmd.Flags().StringVar(&serverConfig, "config", "", "Path to a YAML config file")
}

// loadConfig resolves the effective configuration: defaults, overlaid with
// the config file when one is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(serverConfig)
	if err != nil {
		return fail(err)
	}
	if cmd.Flags().Changed("port") || cfg.Server.Port == 0 {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("host") || cfg.Server.Host == "" {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("enable-cors") {
		cfg.Server.EnableCORS = serverCORS
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	server := api.NewServer(cfg)

	// Graceful shutdown on interrupt
	done := make(chan error, 1)
	go func() {
		done <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	printInfo("API server listening on %s:%d", cfg.Server.Host, cfg.Server.Port)
	printInfo("Press Ctrl+C to stop")

	select {
	case err := <-done:
		return err
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
		printSuccess("Server stopped")
		return nil
	}
}
