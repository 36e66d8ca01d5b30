package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/render"
	"github.com/bioseek/bioseek/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy [name]",
	Short: "Resolve an organism name or taxonomy ID",
	Long: `Resolve an organism name against the NCBI taxonomy, or look up a
taxonomy ID directly with --tax-id. Name resolution takes the top entry of
NCBI's own suggestion ranking.`,
	Example: `  bioseek taxonomy "homo sapiens"
  bioseek taxonomy mouse --detailed
  bioseek taxonomy --tax-id 9606
  bioseek taxonomy yeast --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaxonomy,
}

var (
	taxonomyTaxID    int
	taxonomyFormat   string
	taxonomyDetailed bool
)

func init() {
	taxonomyCmd.Flags().IntVar(&taxonomyTaxID, "tax-id", 0, "Look up by taxonomy ID instead of name")
	taxonomyCmd.Flags().StringVarP(&taxonomyFormat, "format", "f", "human", "Output format (human|json)")
	taxonomyCmd.Flags().BoolVarP(&taxonomyDetailed, "detailed", "d", false, "Include the full named lineage")
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && taxonomyTaxID > 0 {
		return fail(fmt.Errorf("provide either an organism name or --tax-id, not both"))
	}
	if len(args) == 0 && taxonomyTaxID == 0 {
		return fail(fmt.Errorf("an organism name or --tax-id is required"))
	}

	client := taxonomy.NewClient(config.DefaultConfig())
	ctx := context.Background()

	var (
		record *taxonomy.Record
		err    error
	)
	if taxonomyTaxID > 0 {
		printDebug("looking up taxonomy ID %d", taxonomyTaxID)
		record, err = client.GetByTaxID(ctx, taxonomyTaxID)
	} else {
		printDebug("resolving organism name %q", args[0])
		record, err = client.SearchByName(ctx, args[0])
	}
	if err != nil {
		return fail(err)
	}

	if taxonomyFormat == "json" {
		return printJSON(record)
	}
	fmt.Println(render.Taxonomy(record, taxonomyDetailed))
	return nil
}
