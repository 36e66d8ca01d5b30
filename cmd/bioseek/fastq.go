package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/render"
	"github.com/bioseek/bioseek/internal/retry"
)

var fastqCmd = &cobra.Command{
	Use:   "fastq <run-accession>",
	Short: "Get FASTQ download URLs for a sequencing run",
	Long: `Look up the FASTQ files of one sequencing run and print HTTPS download
URLs, derived from the archive's FTP paths, together with file sizes and
MD5 checksums.`,
	Example: `  bioseek fastq ERR164407
  bioseek fastq SRR000001 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runFastq,
}

var (
	fastqFormat  string
	fastqRetries int
)

func init() {
	fastqCmd.Flags().StringVarP(&fastqFormat, "format", "f", "human", "Output format (human|json)")
	fastqCmd.Flags().IntVar(&fastqRetries, "retries", 0, "Retry transient failures this many times")
}

func runFastq(cmd *cobra.Command, args []string) error {
	client := ena.NewClient(config.DefaultConfig())
	ctx := context.Background()

	var result *ena.FastqResult
	err := retry.Do(ctx, fastqRetries+1, time.Second, func() error {
		var fetchErr error
		result, fetchErr = client.GetFastqURLs(ctx, args[0])
		return fetchErr
	})
	if err != nil {
		return fail(err)
	}

	if fastqFormat == "json" {
		return printJSON(result)
	}
	fmt.Println(render.Fastq(result))
	return nil
}
