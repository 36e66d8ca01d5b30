// Package taxonomy provides a client for the NCBI Datasets taxonomy API.
// It resolves free-text organism names to taxonomy IDs via the suggestion
// endpoint and hydrates full records, including a simplified lineage, from
// the detail endpoint. All record fields are transcribed from the remote
// response; nothing is inferred locally.
package taxonomy

// Record is the resolved taxonomy record for one organism.
type Record struct {
	TaxID          int           `json:"tax_id"`
	ScientificName string        `json:"scientific_name"`
	CommonName     string        `json:"common_name,omitempty"`
	Rank           string        `json:"rank"`
	ParentTaxID    int           `json:"parent_tax_id,omitempty"`
	// LineageTaxIDs is the raw ancestor chain of taxonomy IDs, root first,
	// exactly as the service reports it.
	LineageTaxIDs []int `json:"lineage,omitempty"`
	// Lineage is the simplified named lineage, root to parent, built from
	// the ranks the service names in its classification block.
	Lineage []LineageNode `json:"named_lineage,omitempty"`
}

// LineageNode is one ancestor in the simplified lineage.
type LineageNode struct {
	TaxID int    `json:"tax_id"`
	Name  string `json:"name"`
	Rank  string `json:"rank"`
}

// suggestResponse mirrors the shape of the taxon_suggest endpoint.
type suggestResponse struct {
	SciNameAndIDs []suggestion `json:"sci_name_and_ids"`
}

type suggestion struct {
	SciName string `json:"sci_name"`
	// The service reports tax_id as a string.
	TaxID string `json:"tax_id"`
}

// taxonResponse mirrors the shape of the taxon detail endpoint. Only the
// fields this client reads are modeled; anything else is ignored.
type taxonResponse struct {
	TaxonomyNodes []struct {
		Taxonomy taxonomyNode `json:"taxonomy"`
	} `json:"taxonomy_nodes"`
}

type taxonomyNode struct {
	TaxID             int            `json:"tax_id"`
	OrganismName      string         `json:"organism_name"`
	CommonNames       []string       `json:"common_names"`
	GenbankCommonName string         `json:"genbank_common_name"`
	Rank              string         `json:"rank"`
	ParentTaxID       int            `json:"parent_tax_id"`
	Lineage           []int          `json:"lineage"`
	Classification    classification `json:"classification"`
}

// classification names the ancestors the service ranks explicitly.
type classification struct {
	Superkingdom *rankedTaxon `json:"superkingdom"`
	Kingdom      *rankedTaxon `json:"kingdom"`
	Phylum       *rankedTaxon `json:"phylum"`
	Class        *rankedTaxon `json:"class"`
	Order        *rankedTaxon `json:"order"`
	Family       *rankedTaxon `json:"family"`
	Genus        *rankedTaxon `json:"genus"`
	Species      *rankedTaxon `json:"species"`
}

type rankedTaxon struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
