// Package ena provides a client for the European Nucleotide Archive portal
// search API. It translates organism names or ENA filter expressions into
// portal queries, normalizes the tabular JSON responses into flat records,
// groups run-level results by their parent study, and derives HTTPS download
// URLs from the FTP paths the archive reports.
package ena

// ResultType identifies an ENA portal result set.
type ResultType string

const (
	ResultTypeReadRun  ResultType = "read_run"
	ResultTypeAssembly ResultType = "assembly"
	ResultTypeWGS      ResultType = "wgs_set"
	ResultTypeSequence ResultType = "sequence"
	ResultTypeStudy    ResultType = "study"
	ResultTypeSample   ResultType = "sample"
	ResultTypeAnalysis ResultType = "analysis"
	ResultTypeTaxon    ResultType = "taxon"
)

// DataTypes maps the user-facing data type names accepted on the command
// line to portal result types. "read" and "fastq" are aliases.
var DataTypes = map[string]ResultType{
	"read":     ResultTypeReadRun,
	"fastq":    ResultTypeReadRun,
	"assembly": ResultTypeAssembly,
	"wgs":      ResultTypeWGS,
	"sequence": ResultTypeSequence,
	"study":    ResultTypeStudy,
	"sample":   ResultTypeSample,
	"analysis": ResultTypeAnalysis,
	"taxon":    ResultTypeTaxon,
}

// validResultTypes is the set of result types the portal accepts.
var validResultTypes = map[ResultType]bool{
	ResultTypeReadRun:  true,
	ResultTypeAssembly: true,
	ResultTypeWGS:      true,
	ResultTypeSequence: true,
	ResultTypeStudy:    true,
	ResultTypeSample:   true,
	ResultTypeAnalysis: true,
	ResultTypeTaxon:    true,
}

// Record is one flat portal result row. The field set is determined entirely
// by the request; values are kept as strings exactly as the portal reports
// them, and fields absent from a row are absent from the map.
type Record map[string]string

// SearchRequest describes one portal search.
type SearchRequest struct {
	// Query is either a bare organism name, a numeric taxonomy ID, or a
	// full ENA filter expression. It is formatted, never parsed.
	Query      string
	ResultType ResultType
	Limit      int
	Offset     int
	// Fields overrides the per-result-type default field list when set.
	Fields []string
}

// SearchResponse is the normalized outcome of a successful search. Both the
// human and JSON output shapes are derived from it without re-querying.
type SearchResponse struct {
	Query      string     `json:"query"`
	ResultType ResultType `json:"result_type"`
	Count      int        `json:"count"`
	Records    []Record   `json:"results"`

	// Groups is populated only for read_run searches.
	StudyCount int          `json:"total_bioprojects,omitempty"`
	Groups     []StudyGroup `json:"grouped_by_bioproject,omitempty"`
}

// StudyGroup aggregates the runs of one study. Groups appear in order of
// first appearance in the raw results; runs keep their server order.
type StudyGroup struct {
	StudyAccession    string   `json:"bioproject_accession"`
	StudyTitle        string   `json:"study_title,omitempty"`
	RunCount          int      `json:"read_count"`
	LibraryStrategies []string `json:"library_strategies,omitempty"`
	Platforms         []string `json:"instrument_platforms,omitempty"`
	Runs              []Record `json:"runs"`
}

// FastqResult holds the derived download URLs for one run accession.
type FastqResult struct {
	RunAccession string   `json:"run_accession"`
	URLs         []string `json:"fastq_urls"`
	FileSizes    []string `json:"file_sizes,omitempty"`
	MD5Checksums []string `json:"md5_checksums,omitempty"`
}
