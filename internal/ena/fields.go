package ena

// defaultFields maps each result type to the field list requested when the
// caller supplies none. These sets are a fixed policy choice, not derived:
// run-level searches carry everything needed for download and grouping,
// study-level searches carry descriptive metadata.
var defaultFields = map[ResultType][]string{
	ResultTypeReadRun: {
		"run_accession", "study_accession", "sample_accession",
		"scientific_name", "instrument_platform", "library_layout",
		"fastq_ftp", "fastq_bytes", "library_strategy", "study_title",
	},
	ResultTypeAssembly: {
		"accession", "scientific_name", "assembly_level",
		"genome_representation", "assembly_name", "assembly_title",
	},
	ResultTypeStudy: {
		"study_accession", "study_title", "study_alias",
		"scientific_name", "study_description",
	},
	ResultTypeSample: {
		"sample_accession", "scientific_name", "collection_date",
		"country", "host", "isolation_source",
	},
}

// fallbackFields is used for result types without a dedicated default set.
var fallbackFields = []string{"accession", "scientific_name"}

// DefaultFields returns a copy of the default field list for the given
// result type.
func DefaultFields(resultType ResultType) []string {
	fields, ok := defaultFields[resultType]
	if !ok {
		fields = fallbackFields
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}
