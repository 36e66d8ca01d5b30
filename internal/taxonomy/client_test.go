package taxonomy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/errors"
	"github.com/bioseek/bioseek/internal/testutil"
)

func newTestClient(baseURL string) *Client {
	cfg := config.DefaultConfig()
	cfg.Taxonomy.BaseURL = baseURL
	cfg.HTTP.TimeoutSeconds = 5
	return NewClient(cfg)
}

// stubNCBI serves both the suggest and detail endpoints for Homo sapiens.
func stubNCBI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/datasets/v2/taxonomy/taxon_suggest/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sci_name_and_ids": []map[string]any{
				{"sci_name": "Homo sapiens", "tax_id": "9606"},
				{"sci_name": "Homo sapiens neanderthalensis", "tax_id": "63221"},
			},
		})
	})

	mux.HandleFunc("/datasets/v2/taxonomy/taxon/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/9606") {
			json.NewEncoder(w).Encode(map[string]any{"taxonomy_nodes": []any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"taxonomy_nodes": []map[string]any{{
				"taxonomy": map[string]any{
					"tax_id":        9606,
					"organism_name": "Homo sapiens",
					"common_names":  []string{"human"},
					"rank":          "SPECIES",
					"parent_tax_id": 9605,
					"lineage":       []int{131567, 2759, 33154, 33208, 7711, 40674, 9443, 9604, 9605},
					"classification": map[string]any{
						"superkingdom": map[string]any{"id": 2759, "name": "Eukaryota"},
						"phylum":       map[string]any{"id": 7711, "name": "Chordata"},
						"class":        map[string]any{"id": 40674, "name": "Mammalia"},
						"order":        map[string]any{"id": 9443, "name": "Primates"},
						"family":       map[string]any{"id": 9604, "name": "Hominidae"},
						"genus":        map[string]any{"id": 9605, "name": "Homo"},
						"species":      map[string]any{"id": 9606, "name": "Homo sapiens"},
					},
				},
			}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSearchByName(t *testing.T) {
	server := stubNCBI(t)
	client := newTestClient(server.URL)

	rec, err := client.SearchByName(context.Background(), "Homo sapiens")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}

	if rec.TaxID != 9606 {
		t.Errorf("expected tax ID 9606, got %d", rec.TaxID)
	}
	if rec.ScientificName != "Homo sapiens" {
		t.Errorf("unexpected scientific name: %s", rec.ScientificName)
	}
	if !strings.EqualFold(rec.Rank, "species") {
		t.Errorf("unexpected rank: %s", rec.Rank)
	}
	if rec.CommonName != "human" {
		t.Errorf("unexpected common name: %s", rec.CommonName)
	}
	if rec.ParentTaxID != 9605 {
		t.Errorf("unexpected parent tax ID: %d", rec.ParentTaxID)
	}
}

func TestSimplifiedLineage(t *testing.T) {
	server := stubNCBI(t)
	client := newTestClient(server.URL)

	rec, err := client.GetByTaxID(context.Background(), 9606)
	if err != nil {
		t.Fatalf("GetByTaxID failed: %v", err)
	}

	// Root to parent, the node's own entry excluded.
	wantRanks := []string{"superkingdom", "phylum", "class", "order", "family", "genus"}
	if len(rec.Lineage) != len(wantRanks) {
		t.Fatalf("expected %d lineage nodes, got %d: %+v", len(wantRanks), len(rec.Lineage), rec.Lineage)
	}
	for i, rank := range wantRanks {
		if rec.Lineage[i].Rank != rank {
			t.Errorf("lineage[%d]: rank %s, want %s", i, rec.Lineage[i].Rank, rank)
		}
	}
	if rec.Lineage[0].Name != "Eukaryota" || rec.Lineage[len(rec.Lineage)-1].Name != "Homo" {
		t.Errorf("unexpected lineage endpoints: %+v", rec.Lineage)
	}
	if len(rec.LineageTaxIDs) != 9 {
		t.Errorf("raw lineage not transcribed: %v", rec.LineageTaxIDs)
	}
}

func TestSearchByNameFirstSuggestionWins(t *testing.T) {
	var detailPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/datasets/v2/taxonomy/taxon_suggest/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sci_name_and_ids": []map[string]any{
				{"sci_name": "Mus musculus", "tax_id": "10090"},
				{"sci_name": "Mus musculus domesticus", "tax_id": "10092"},
			},
		})
	})
	mux.HandleFunc("/datasets/v2/taxonomy/taxon/", func(w http.ResponseWriter, r *http.Request) {
		detailPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"taxonomy_nodes": []map[string]any{{
				"taxonomy": map[string]any{"tax_id": 10090, "organism_name": "Mus musculus", "rank": "SPECIES"},
			}},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)
	rec, err := client.SearchByName(context.Background(), "mouse")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}
	if rec.TaxID != 10090 {
		t.Errorf("expected the first suggestion's ID, got %d", rec.TaxID)
	}
	if !strings.HasSuffix(detailPath, "/10090") {
		t.Errorf("detail lookup used %s, want the first suggestion", detailPath)
	}
}

func TestSearchByNameNoMatch(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, map[string]any{"sci_name_and_ids": []any{}})
	client := newTestClient(server.URL)

	_, err := client.SearchByName(context.Background(), "Notarealius organismus")
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestSearchByNameEmptyInput(t *testing.T) {
	client := newTestClient("http://localhost:1")
	_, err := client.SearchByName(context.Background(), "   ")
	if !errors.IsKind(err, errors.KindValidation) {
		t.Errorf("expected a usage error before any network call, got %v", err)
	}
}

func TestGetByTaxIDNotFound(t *testing.T) {
	server := testutil.JSONServer(t, http.StatusOK, map[string]any{"taxonomy_nodes": []any{}})
	client := newTestClient(server.URL)

	_, err := client.GetByTaxID(context.Background(), 99999999)
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	client := newTestClient(testutil.DeadServerURL(t))

	_, err := client.SearchByName(context.Background(), "Homo sapiens")
	ce := errors.AsClient(err)
	if ce == nil || ce.Kind != errors.KindNetwork {
		t.Fatalf("expected KindNetwork, got %v", err)
	}
	if !strings.Contains(ce.Suggestion, "127.0.0.1") && !strings.Contains(ce.Suggestion, "localhost") {
		t.Errorf("suggestion should name the unreachable host: %q", ce.Suggestion)
	}
}
