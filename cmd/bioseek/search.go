package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/render"
	"github.com/bioseek/bioseek/internal/retry"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the European Nucleotide Archive",
	Long: `Search the ENA portal for sequencing data. The query can be an organism
name, an NCBI taxonomy ID, or a raw ENA filter expression; names and IDs are
wrapped in the portal's filter syntax automatically.

Run-level results are grouped by study so related runs appear together.
Finding nothing is a successful outcome: the command prints an empty result
and exits zero.`,
	Example: `  bioseek search "Saccharomyces cerevisiae" --limit 10
  bioseek search 4932 --data-type read
  bioseek search 'study_accession="PRJEB1234"'
  bioseek search "Mus musculus" --data-type assembly --format json
  bioseek search human --fields run_accession,library_strategy --show-urls`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchDataType string
	searchLimit    int
	searchOffset   int
	searchFields   string
	searchFormat   string
	searchShowURLs bool
	searchRetries  int
)

func init() {
	searchCmd.Flags().StringVarP(&searchDataType, "data-type", "t", "read", "Data type (read|fastq|assembly|wgs|sequence|study|sample|analysis|taxon)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 10, "Maximum results to return")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Number of results to skip (for pagination)")
	searchCmd.Flags().StringVar(&searchFields, "fields", "", "Comma-separated list of fields to request")
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", "human", "Output format (human|json)")
	searchCmd.Flags().BoolVar(&searchShowURLs, "show-urls", false, "Show HTTPS download URLs for FTP fields")
	searchCmd.Flags().IntVar(&searchRetries, "retries", 0, "Retry transient failures this many times")
}

func runSearch(cmd *cobra.Command, args []string) error {
	resultType, ok := ena.DataTypes[searchDataType]
	if !ok {
		return fail(fmt.Errorf("unknown data type %q (try read, assembly, study, or sample)", searchDataType))
	}

	req := ena.SearchRequest{
		Query:      args[0],
		ResultType: resultType,
		Limit:      searchLimit,
		Offset:     searchOffset,
	}
	if searchFields != "" {
		for _, f := range strings.Split(searchFields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				req.Fields = append(req.Fields, f)
			}
		}
	}

	client := ena.NewClient(config.DefaultConfig())
	ctx := context.Background()

	var resp *ena.SearchResponse
	err := retry.Do(ctx, searchRetries+1, time.Second, func() error {
		var searchErr error
		resp, searchErr = client.Search(ctx, req)
		return searchErr
	})
	if err != nil {
		return fail(err)
	}

	if searchFormat == "json" {
		return printJSON(resp)
	}
	fmt.Println(render.Search(resp, searchShowURLs))
	return nil
}
