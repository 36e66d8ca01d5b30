package iwc

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/errors"
	"github.com/bioseek/bioseek/internal/testutil"
)

func newTestClient(manifestURL string) *Client {
	cfg := config.DefaultConfig()
	cfg.Workflows.BaseURL = manifestURL
	cfg.HTTP.TimeoutSeconds = 5
	return NewClient(cfg)
}

// testManifest holds 10 workflows across two repos; 3 lack a tests entry
// and must be excluded everywhere.
func testManifest() []map[string]any {
	tested := func(name string, categories ...string) map[string]any {
		return map[string]any{
			"trsID":       "#workflow/github.com/iwc-workflows/" + name,
			"iwcID":       name,
			"collections": categories,
			"tests":       []map[string]any{{"doc": "test"}},
			"definition": map[string]any{
				"name":       name,
				"annotation": "Workflow " + name,
				"release":    "0.1",
				"tags":       []string{"genomics"},
			},
		}
	}
	untested := func(name string, categories ...string) map[string]any {
		w := tested(name, categories...)
		delete(w, "tests")
		return w
	}

	return []map[string]any{
		{"workflows": []map[string]any{
			tested("variant-calling-hg38", "Variant Calling"),
			tested("sars-cov-2-variants", "Variant Calling", "Virology"),
			untested("wip-variants", "Variant Calling"),
			tested("rnaseq-pe", "Transcriptomics"),
			tested("rnaseq-sr", "Transcriptomics"),
		}},
		{"workflows": []map[string]any{
			tested("atac-seq", "Epigenetics"),
			untested("wip-chipseq", "Epigenetics"),
			tested("hifi-assembly", "Genome assembly"),
			untested("wip-assembly", "Genome assembly", "Experimental"),
			tested("nanopore-assembly", "Genome assembly"),
		}},
	}
}

func TestSearchExcludesUntestedWorkflows(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, testManifest())
	client := newTestClient(server.URL)

	workflows, err := client.Search(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(workflows) != 7 {
		t.Fatalf("expected 7 tested workflows, got %d", len(workflows))
	}
	for _, w := range workflows {
		if w.Name == "wip-variants" || w.Name == "wip-chipseq" || w.Name == "wip-assembly" {
			t.Errorf("untested workflow %s must be excluded", w.Name)
		}
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, testManifest())
	client := newTestClient(server.URL)

	tests := []struct {
		name     string
		category string
		expected int
	}{
		{"exact case", "Variant Calling", 2},
		{"case-insensitive", "variant calling", 2},
		{"substring", "assembly", 2},
		{"virology", "Virology", 1},
		{"no match", "Proteomics", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workflows, err := client.Search(context.Background(), tt.category, 0)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(workflows) != tt.expected {
				t.Errorf("category %q: got %d workflows, want %d", tt.category, len(workflows), tt.expected)
			}
			for _, w := range workflows {
				matched := false
				for _, cat := range w.Categories {
					if strings.Contains(strings.ToLower(cat), strings.ToLower(tt.category)) {
						matched = true
					}
				}
				if !matched {
					t.Errorf("workflow %s does not belong to category %q", w.Name, tt.category)
				}
			}
		})
	}
}

func TestSearchLimitAppliedAfterFiltering(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, testManifest())
	client := newTestClient(server.URL)

	workflows, err := client.Search(context.Background(), "Genome assembly", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(workflows) != 1 {
		t.Errorf("expected the limit to cap results at 1, got %d", len(workflows))
	}
	if workflows[0].Name != "hifi-assembly" {
		t.Errorf("limit changed ordering: got %s", workflows[0].Name)
	}
}

func TestListCategories(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, testManifest())
	client := newTestClient(server.URL)

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	// Categories declared only by untested workflows ("Experimental") must
	// not appear.
	want := []string{"Epigenetics", "Genome assembly", "Transcriptomics", "Variant Calling", "Virology"}
	if len(categories) != len(want) {
		t.Fatalf("got categories %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, categories[i], want[i])
		}
	}
}

func TestWorkflowDescriptorFields(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, testManifest())
	client := newTestClient(server.URL)

	workflows, err := client.Search(context.Background(), "Virology", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(workflows) != 1 {
		t.Fatalf("expected one virology workflow, got %d", len(workflows))
	}

	w := workflows[0]
	if w.TrsID != "#workflow/github.com/iwc-workflows/sars-cov-2-variants" {
		t.Errorf("unexpected TRS ID: %s", w.TrsID)
	}
	if w.Description != "Workflow sars-cov-2-variants" {
		t.Errorf("unexpected description: %s", w.Description)
	}
	if w.Release != "0.1" || len(w.Tags) != 1 {
		t.Errorf("definition fields not transcribed: %+v", w)
	}
}

func TestManifestTransportFailure(t *testing.T) {
	client := newTestClient(testutil.DeadServerURL(t))

	_, err := client.Search(context.Background(), "", 0)
	if !errors.IsKind(err, errors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", err)
	}
	_, err = client.ListCategories(context.Background())
	if !errors.IsKind(err, errors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", err)
	}
}
