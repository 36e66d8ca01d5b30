package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts registers all MCP prompt templates.
func registerPrompts(server *gomcp.Server) {
	// find_sequencing_data — guided organism-to-download workflow
	server.AddPrompt(
		&gomcp.Prompt{
			Name:        "find_sequencing_data",
			Description: "Find public sequencing data for an organism and locate the download URLs",
			Arguments: []*gomcp.PromptArgument{
				{
					Name:        "organism",
					Description: "Organism name or taxonomy ID",
					Required:    true,
				},
				{
					Name:        "strategy",
					Description: "Library strategy of interest, e.g. RNA-Seq (optional)",
					Required:    false,
				},
			},
		},
		func(ctx context.Context, req *gomcp.GetPromptRequest) (*gomcp.GetPromptResult, error) {
			organism := req.Params.Arguments["organism"]
			if organism == "" {
				return nil, fmt.Errorf("organism argument is required")
			}

			strategy := req.Params.Arguments["strategy"]
			text := fmt.Sprintf(
				"Find public sequencing runs for %s. "+
					"First resolve the organism with the resolve_taxonomy tool, then search the archive "+
					"with search_ena using the resolved taxonomy ID. Review the study groups in the result, "+
					"pick the most relevant study, and use get_study_details for its description. "+
					"Finally use get_fastq_urls on the runs you want to download.",
				organism,
			)
			if strategy != "" {
				text += fmt.Sprintf(" Prefer runs with library strategy %s.", strategy)
			}

			return &gomcp.GetPromptResult{
				Description: fmt.Sprintf("Find sequencing data for %s", organism),
				Messages: []*gomcp.PromptMessage{{
					Role:    "user",
					Content: &gomcp.TextContent{Text: text},
				}},
			}, nil
		},
	)

	// plan_analysis — match data to a cataloged workflow
	server.AddPrompt(
		&gomcp.Prompt{
			Name:        "plan_analysis",
			Description: "Pick a tested analysis workflow for a given kind of sequencing data",
			Arguments: []*gomcp.PromptArgument{
				{
					Name:        "analysis",
					Description: "Kind of analysis, e.g. genome assembly or variant calling",
					Required:    true,
				},
			},
		},
		func(ctx context.Context, req *gomcp.GetPromptRequest) (*gomcp.GetPromptResult, error) {
			analysis := req.Params.Arguments["analysis"]
			if analysis == "" {
				return nil, fmt.Errorf("analysis argument is required")
			}

			text := fmt.Sprintf(
				"Find a workflow suitable for %s. "+
					"Use list_workflow_categories to see the available categories, then search_workflows "+
					"with the closest category. All returned workflows carry tests, so any of them is safe "+
					"to recommend; prefer the one whose description best matches the data at hand.",
				analysis,
			)

			return &gomcp.GetPromptResult{
				Description: fmt.Sprintf("Plan a %s analysis", analysis),
				Messages: []*gomcp.PromptMessage{{
					Role:    "user",
					Content: &gomcp.TextContent{Text: text},
				}},
			}, nil
		},
	)
}
