package mcp

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bioseek/bioseek/internal/ena"
)

// Tool argument structs — field tags drive automatic JSON schema generation.

// ResolveTaxonomyArgs are the arguments for the resolve_taxonomy tool.
type ResolveTaxonomyArgs struct {
	Name  string `json:"name,omitempty" jsonschema:"organism name to resolve, e.g. human or Mus musculus"`
	TaxID int    `json:"tax_id,omitempty" jsonschema:"NCBI taxonomy ID to look up directly"`
}

// SearchENAArgs are the arguments for the search_ena tool.
type SearchENAArgs struct {
	Query      string `json:"query" jsonschema:"organism name, taxonomy ID, or an ENA filter expression"`
	ResultType string `json:"result_type,omitempty" jsonschema:"result type: read_run, assembly, study, sample (default read_run)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum results, default 20"`
	Offset     int    `json:"offset,omitempty" jsonschema:"number of results to skip for pagination"`
}

// GetFastqURLsArgs are the arguments for the get_fastq_urls tool.
type GetFastqURLsArgs struct {
	RunAccession string `json:"run_accession" jsonschema:"run accession, e.g. ERR164407 or SRR000001"`
}

// GetStudyDetailsArgs are the arguments for the get_study_details tool.
type GetStudyDetailsArgs struct {
	Accessions []string `json:"accessions" jsonschema:"study accessions, e.g. PRJEB1234 or ERP123456"`
}

// SearchWorkflowsArgs are the arguments for the search_workflows tool.
type SearchWorkflowsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"category filter, case-insensitive substring match"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum results, 0 for unlimited"`
}

// ListWorkflowCategoriesArgs are the arguments for the list_workflow_categories tool.
type ListWorkflowCategoriesArgs struct{}

// registerTools registers all MCP tools on the server.
func registerTools(server *gomcp.Server, clients *Clients) {
	// resolve_taxonomy
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "resolve_taxonomy",
		Description: "Resolve an organism name to its NCBI taxonomy record, or look up a taxonomy ID directly. Returns the taxonomy ID, scientific name, rank, and lineage.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args ResolveTaxonomyArgs) (*gomcp.CallToolResult, any, error) {
		if args.Name == "" && args.TaxID == 0 {
			return errResult("either name or tax_id is required"), nil, nil
		}

		var (
			record interface{}
			err    error
		)
		if args.TaxID > 0 {
			record, err = clients.Taxonomy.GetByTaxID(ctx, args.TaxID)
		} else {
			record, err = clients.Taxonomy.SearchByName(ctx, args.Name)
		}
		if err != nil {
			return clientErrResult(err), nil, nil
		}

		return textResult(toJSON(record)), nil, nil
	})

	// search_ena
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "search_ena",
		Description: "Search the European Nucleotide Archive for sequencing data. Accepts an organism name, a taxonomy ID, or raw ENA filter syntax. Run-level results are grouped by study.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args SearchENAArgs) (*gomcp.CallToolResult, any, error) {
		if args.Query == "" {
			return errResult("query is required"), nil, nil
		}

		limit := args.Limit
		if limit <= 0 {
			limit = 20
		}
		resultType := ena.ResultType(args.ResultType)
		if resultType == "" {
			resultType = ena.ResultTypeReadRun
		}

		resp, err := clients.Archive.Search(ctx, ena.SearchRequest{
			Query:      args.Query,
			ResultType: resultType,
			Limit:      limit,
			Offset:     args.Offset,
		})
		if err != nil {
			return clientErrResult(err), nil, nil
		}

		return textResult(toJSON(resp)), nil, nil
	})

	// get_fastq_urls
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "get_fastq_urls",
		Description: "Get HTTPS download URLs for the FASTQ files of a sequencing run, with file sizes and checksums.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args GetFastqURLsArgs) (*gomcp.CallToolResult, any, error) {
		if args.RunAccession == "" {
			return errResult("run_accession is required"), nil, nil
		}

		result, err := clients.Archive.GetFastqURLs(ctx, args.RunAccession)
		if err != nil {
			return clientErrResult(err), nil, nil
		}

		return textResult(toJSON(result)), nil, nil
	})

	// get_study_details
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "get_study_details",
		Description: "Get descriptive metadata for one or more study (BioProject) accessions. Each accession gets its own entry; absent studies are reported as not found rather than failing the batch.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args GetStudyDetailsArgs) (*gomcp.CallToolResult, any, error) {
		if len(args.Accessions) == 0 {
			return errResult("at least one accession is required"), nil, nil
		}

		results := clients.Studies.GetMultipleDetails(ctx, args.Accessions)
		return textResult(toJSON(results)), nil, nil
	})

	// search_workflows
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "search_workflows",
		Description: "Search the IWC catalog of tested Galaxy analysis workflows, optionally filtered by category. Workflows without tests are never returned.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args SearchWorkflowsArgs) (*gomcp.CallToolResult, any, error) {
		workflows, err := clients.Workflows.Search(ctx, args.Category, args.Limit)
		if err != nil {
			return clientErrResult(err), nil, nil
		}

		return textResult(toJSON(map[string]interface{}{
			"count":     len(workflows),
			"workflows": workflows,
		})), nil, nil
	})

	// list_workflow_categories
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "list_workflow_categories",
		Description: "List the distinct workflow categories available in the IWC catalog.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args ListWorkflowCategoriesArgs) (*gomcp.CallToolResult, any, error) {
		categories, err := clients.Workflows.ListCategories(ctx)
		if err != nil {
			return clientErrResult(err), nil, nil
		}

		return textResult(toJSON(map[string]interface{}{
			"count":      len(categories),
			"categories": categories,
		})), nil, nil
	})
}
