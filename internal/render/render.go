// Package render turns normalized client results into the human-readable
// output format. All rendering works from the in-memory result values; it
// never re-fetches. The JSON output format bypasses this package entirely
// and marshals the same values directly.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/errors"
	"github.com/bioseek/bioseek/internal/iwc"
	"github.com/bioseek/bioseek/internal/study"
	"github.com/bioseek/bioseek/internal/taxonomy"
)

// maxValueLength caps any single rendered field value; longer values are
// cut and marked with an ellipsis.
const maxValueLength = 100

const separator = "------------------------------------------------------------"
const heavySeparator = "============================================================"

// Truncate shortens s to at most maxValueLength characters, appending an
// ellipsis when anything was cut.
func Truncate(s string) string {
	return TruncateTo(s, maxValueLength)
}

// TruncateTo shortens s to at most max characters including the ellipsis.
func TruncateTo(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// fieldLabel turns a snake_case portal field name into a display label,
// e.g. "study_accession" -> "Study Accession".
func fieldLabel(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Error renders the {error, suggestion} shape as two lines of text.
func Error(err error) string {
	ce := errors.AsClient(err)
	if ce == nil {
		return ""
	}
	out := "Error: " + ce.Message
	if ce.Suggestion != "" {
		out += "\n" + ce.Suggestion
	}
	return out
}

// Taxonomy renders a resolved taxonomy record. The lineage is included
// only when detailed is set.
func Taxonomy(rec *taxonomy.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Taxonomy ID: %d\n", rec.TaxID)
	fmt.Fprintf(&b, "Scientific Name: %s\n", rec.ScientificName)
	if rec.CommonName != "" {
		fmt.Fprintf(&b, "Common Name: %s\n", rec.CommonName)
	}
	fmt.Fprintf(&b, "Rank: %s", rec.Rank)

	if detailed && len(rec.Lineage) > 0 {
		b.WriteString("\n\nLineage:")
		for _, node := range rec.Lineage {
			fmt.Fprintf(&b, "\n  %s: %s (%d)", fieldLabel(node.Rank), node.Name, node.TaxID)
		}
	}
	return b.String()
}

// Search renders an archive search response. Run-level responses are shown
// grouped by study; everything else is a flat record listing.
func Search(resp *ena.SearchResponse, showURLs bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n", resp.Query)
	fmt.Fprintf(&b, "Result Type: %s\n", resp.ResultType)
	fmt.Fprintf(&b, "Results Found: %d", resp.Count)

	if resp.Count == 0 {
		b.WriteString("\n\nNo results found")
		return b.String()
	}

	if len(resp.Groups) > 0 {
		fmt.Fprintf(&b, "\nStudies: %d\n", resp.StudyCount)
		b.WriteString("\n" + heavySeparator)
		b.WriteString("\nRESULTS GROUPED BY STUDY")
		b.WriteString("\n" + heavySeparator)
		for i, g := range resp.Groups {
			fmt.Fprintf(&b, "\n\nStudy %d:\n", i+1)
			fmt.Fprintf(&b, "  Accession: %s\n", g.StudyAccession)
			fmt.Fprintf(&b, "  Runs: %d\n", g.RunCount)
			if g.StudyTitle != "" {
				fmt.Fprintf(&b, "  Title: %s\n", Truncate(g.StudyTitle))
			}
			if len(g.LibraryStrategies) > 0 {
				fmt.Fprintf(&b, "  Library Strategies: %s\n", strings.Join(g.LibraryStrategies, ", "))
			}
			if len(g.Platforms) > 0 {
				fmt.Fprintf(&b, "  Platforms: %s\n", strings.Join(g.Platforms, ", "))
			}
			b.WriteString("  Sample Runs:")
			for j, run := range g.Runs {
				if j == 3 {
					fmt.Fprintf(&b, "\n    ... and %d more", len(g.Runs)-3)
					break
				}
				fmt.Fprintf(&b, "\n    %d. %s - %s", j+1, run["run_accession"], run["library_layout"])
			}
			b.WriteString("\n" + separator)
		}
		return b.String()
	}

	b.WriteString("\n\n" + heavySeparator)
	for i, rec := range resp.Records {
		fmt.Fprintf(&b, "\n\nResult %d:", i+1)
		b.WriteString(record(rec, showURLs))
		b.WriteString("\n" + separator)
	}
	return b.String()
}

// record renders one flat record as labeled key/value lines in a stable
// field order.
func record(rec ena.Record, showURLs bool) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := rec[key]
		if value == "" {
			continue
		}
		if showURLs && strings.Contains(key, "ftp") {
			fmt.Fprintf(&b, "\n  %s:", fieldLabel(key))
			for _, u := range ena.DeriveHTTPSURLs(value) {
				fmt.Fprintf(&b, "\n    - %s", u)
			}
			continue
		}
		fmt.Fprintf(&b, "\n  %s: %s", fieldLabel(key), Truncate(value))
	}
	return b.String()
}

// Fastq renders the derived download URLs for one run.
func Fastq(result *ena.FastqResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run: %s\n", result.RunAccession)
	if len(result.URLs) == 0 {
		b.WriteString("No FASTQ files reported")
		return b.String()
	}
	b.WriteString("FASTQ URLs:")
	for i, u := range result.URLs {
		fmt.Fprintf(&b, "\n  - %s", u)
		if i < len(result.FileSizes) {
			fmt.Fprintf(&b, " (%s bytes)", result.FileSizes[i])
		}
	}
	return b.String()
}

// Studies renders one or more study lookup results.
func Studies(results []study.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Retrieved details for %d study accession(s)\n", len(results))
	b.WriteString(heavySeparator)

	for _, r := range results {
		fmt.Fprintf(&b, "\n\nStudy: %s\n", r.Accession)
		switch {
		case r.Err != nil:
			fmt.Fprintf(&b, "Error: %s\n", r.Err.Message)
			if r.Err.Suggestion != "" {
				fmt.Fprintf(&b, "Suggestion: %s\n", r.Err.Suggestion)
			}
		case !r.Found:
			b.WriteString("Not found in the archive\n")
		default:
			d := r.Details
			fmt.Fprintf(&b, "Title: %s\n", Truncate(d.Title))
			if d.Description != "" {
				fmt.Fprintf(&b, "Description: %s\n", TruncateTo(d.Description, 200))
			}
			if d.ScientificName != "" {
				fmt.Fprintf(&b, "Organism: %s (Tax ID: %s)\n", d.ScientificName, d.TaxID)
			}
			if d.CenterName != "" {
				fmt.Fprintf(&b, "Center: %s\n", d.CenterName)
			}
			if d.FirstPublic != "" {
				fmt.Fprintf(&b, "First Public: %s\n", d.FirstPublic)
			}
			if d.LastUpdated != "" {
				fmt.Fprintf(&b, "Last Updated: %s\n", d.LastUpdated)
			}
		}
		b.WriteString(separator)
	}
	return b.String()
}

// Workflows renders a workflow search result.
func Workflows(workflows []iwc.Workflow, category string) string {
	var b strings.Builder
	if category != "" {
		fmt.Fprintf(&b, "Category Filter: %s\n", category)
	}
	fmt.Fprintf(&b, "Workflows Found: %d", len(workflows))

	if len(workflows) == 0 {
		return b.String()
	}

	b.WriteString("\n\n" + heavySeparator)
	for i, w := range workflows {
		fmt.Fprintf(&b, "\n\nWorkflow %d:\n", i+1)
		fmt.Fprintf(&b, "  Name: %s\n", w.Name)
		if w.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", TruncateTo(w.Description, 150))
		}
		if len(w.Categories) > 0 {
			fmt.Fprintf(&b, "  Categories: %s\n", strings.Join(w.Categories, ", "))
		}
		fmt.Fprintf(&b, "  TRS ID: %s\n", w.TrsID)
		if w.Release != "" {
			fmt.Fprintf(&b, "  Release: v%s\n", w.Release)
		}
		if len(w.Tags) > 0 {
			tags := w.Tags
			if len(tags) > 5 {
				tags = tags[:5]
			}
			fmt.Fprintf(&b, "  Tags: %s\n", strings.Join(tags, ", "))
		}
		b.WriteString(separator)
	}
	return b.String()
}

// Categories renders the distinct workflow category list.
func Categories(categories []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available Workflow Categories (%d):\n", len(categories))
	b.WriteString(heavySeparator)
	for _, c := range categories {
		fmt.Fprintf(&b, "\n  - %s", c)
	}
	return b.String()
}
