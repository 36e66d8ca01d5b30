package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/iwc"
	"github.com/bioseek/bioseek/internal/render"
)

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "Browse the IWC catalog of tested Galaxy workflows",
	Long: `Browse the Intergalactic Workflow Commission catalog of Galaxy analysis
workflows. Only workflows that carry tests are listed; category filtering is
a case-insensitive substring match against each workflow's categories.`,
	Example: `  bioseek workflows
  bioseek workflows --category "genome assembly"
  bioseek workflows --category variant --limit 5
  bioseek workflows --list-categories`,
	RunE: runWorkflows,
}

var (
	workflowsCategory string
	workflowsLimit    int
	workflowsFormat   string
	workflowsListCats bool
)

func init() {
	workflowsCmd.Flags().StringVarP(&workflowsCategory, "category", "c", "", "Filter by category (substring match)")
	workflowsCmd.Flags().IntVarP(&workflowsLimit, "limit", "l", 0, "Maximum workflows to show (0 for all)")
	workflowsCmd.Flags().StringVarP(&workflowsFormat, "format", "f", "json", "Output format (human|json)")
	workflowsCmd.Flags().BoolVar(&workflowsListCats, "list-categories", false, "List available categories instead of workflows")
}

func runWorkflows(cmd *cobra.Command, args []string) error {
	client := iwc.NewClient(config.DefaultConfig())
	ctx := context.Background()

	if workflowsListCats {
		categories, err := client.ListCategories(ctx)
		if err != nil {
			return fail(err)
		}
		if workflowsFormat == "json" {
			return printJSON(map[string]interface{}{
				"count":      len(categories),
				"categories": categories,
			})
		}
		fmt.Println(render.Categories(categories))
		return nil
	}

	workflows, err := client.Search(ctx, workflowsCategory, workflowsLimit)
	if err != nil {
		return fail(err)
	}

	if workflowsFormat == "json" {
		return printJSON(map[string]interface{}{
			"count":     len(workflows),
			"workflows": workflows,
		})
	}
	fmt.Println(render.Workflows(workflows, workflowsCategory))
	return nil
}
