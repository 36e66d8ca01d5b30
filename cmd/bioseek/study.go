package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/render"
	"github.com/bioseek/bioseek/internal/study"
)

var studyCmd = &cobra.Command{
	Use:   "study <accession>...",
	Short: "Fetch metadata for study accessions",
	Long: `Fetch descriptive metadata for one or more study (BioProject) accessions.

Each accession is resolved independently: a study the archive does not know
is reported as not found without failing the rest of the batch. The command
exits non-zero only when a lookup failed outright; absence alone does not.`,
	Example: `  bioseek study PRJEB1234
  bioseek study PRJEB1234 PRJNA654321 ERP123456
  bioseek study --file accessions.txt
  bioseek study PRJEB1234 --format json`,
	RunE: runStudy,
}

var (
	studyFormat string
	studyFile   string
)

func init() {
	studyCmd.Flags().StringVarP(&studyFormat, "format", "f", "human", "Output format (human|json)")
	studyCmd.Flags().StringVar(&studyFile, "file", "", "Read accessions from a file (one per line, - for stdin)")
}

func runStudy(cmd *cobra.Command, args []string) error {
	accessions := args
	if studyFile != "" {
		var (
			fromFile []string
			err      error
		)
		if studyFile == "-" {
			fromFile, err = readAccessionsFromReader(os.Stdin)
		} else {
			fromFile, err = readAccessionFile(studyFile)
		}
		if err != nil {
			return fail(fmt.Errorf("reading accessions: %w", err))
		}
		accessions = append(accessions, fromFile...)
	}
	if len(accessions) == 0 {
		return fail(fmt.Errorf("at least one study accession is required"))
	}

	client := study.NewClient(config.DefaultConfig())
	results := client.GetMultipleDetails(context.Background(), accessions)

	if studyFormat == "json" {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		fmt.Println(render.Studies(results))
	}

	// Absence is not failure; only lookups that errored outright count.
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(results))
	}
	return nil
}
