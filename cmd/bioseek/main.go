package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info
var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// Global flags
var (
	noColor bool
	quiet   bool
	debug   bool
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "bioseek",
	Short: "Sequence archive discovery tool",
	Long: `bioseek finds public sequencing data and matching analysis workflows.

It resolves organism names against the NCBI taxonomy, searches the European
Nucleotide Archive for runs, assemblies, studies and samples, fetches study
metadata, derives FASTQ download URLs, and browses the IWC catalog of tested
Galaxy workflows. Every command is a stateless call against the public APIs;
nothing is cached or stored locally.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Example: `  # Resolve an organism name
  bioseek taxonomy "homo sapiens"

  # Search for sequencing runs
  bioseek search "Saccharomyces cerevisiae" --limit 10

  # Get FASTQ download URLs for a run
  bioseek fastq ERR164407

  # Fetch study metadata
  bioseek study PRJEB1234 PRJNA654321

  # Find tested analysis workflows
  bioseek workflows --category "genome assembly"

  # Start the REST API server
  bioseek server --port 8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	// Add commands to root
	rootCmd.AddCommand(taxonomyCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fastqCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(workflowsCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
