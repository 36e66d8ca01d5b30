package ena

// groupByStudy groups run-level records by their study_accession field.
// Group order is the order of first appearance of each study accession in
// the raw results; runs within a group keep their relative server order.
// Every record lands in exactly one group, so the union of group members
// equals the input. Records with no study_accession field are grouped
// under "Unknown" like any other shared key.
func groupByStudy(records []Record) []StudyGroup {
	byStudy := make(map[string]int) // study accession -> index into groups
	groups := make([]StudyGroup, 0)

	for _, rec := range records {
		acc, ok := rec["study_accession"]
		if !ok || acc == "" {
			acc = "Unknown"
		}

		idx, seen := byStudy[acc]
		if !seen {
			idx = len(groups)
			byStudy[acc] = idx
			groups = append(groups, StudyGroup{StudyAccession: acc})
		}

		g := &groups[idx]
		g.Runs = append(g.Runs, rec)
		g.RunCount++
		if g.StudyTitle == "" {
			g.StudyTitle = rec["study_title"]
		}
		g.LibraryStrategies = appendDistinct(g.LibraryStrategies, rec["library_strategy"])
		g.Platforms = appendDistinct(g.Platforms, rec["instrument_platform"])
	}

	return groups
}

// appendDistinct appends value to values unless it is empty or already
// present, preserving first-appearance order.
func appendDistinct(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
