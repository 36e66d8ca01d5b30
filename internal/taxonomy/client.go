package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/errors"
)

const userAgent = "bioseek-taxonomy/1.0"

// Client queries the NCBI Datasets taxonomy endpoints.
type Client struct {
	baseURL    string
	host       string
	httpClient *http.Client
}

// NewClient creates a taxonomy client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	host := "api.ncbi.nlm.nih.gov"
	if u, err := url.Parse(cfg.Taxonomy.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.Taxonomy.BaseURL, "/"),
		host:       host,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// SearchByName resolves an organism name to a full taxonomy record. The
// first entry of the suggestion list is taken as the match; the service's
// own relevance ranking decides, and this client never re-ranks or
// fabricates an identifier. An empty suggestion list is a not-found error.
func (c *Client) SearchByName(ctx context.Context, name string) (*Record, error) {
	const op errors.Op = "taxonomy.SearchByName"

	if strings.TrimSpace(name) == "" {
		return nil, errors.Usage(op, "organism name must not be empty")
	}

	suggestURL := fmt.Sprintf("%s/datasets/v2/taxonomy/taxon_suggest/%s",
		c.baseURL, url.PathEscape(name))

	var suggestions suggestResponse
	if err := c.getJSON(ctx, op, suggestURL, &suggestions); err != nil {
		return nil, err
	}

	if len(suggestions.SciNameAndIDs) == 0 {
		return nil, errors.NotFound(op,
			fmt.Sprintf("No taxonomy match for %q", name),
			"Check the spelling or try the scientific name")
	}

	top := suggestions.SciNameAndIDs[0]
	taxID, err := strconv.Atoi(strings.TrimSpace(top.TaxID))
	if err != nil || taxID <= 0 {
		// Without an identifier the lookup cannot proceed.
		return nil, errors.NotFound(op,
			fmt.Sprintf("No taxonomy match for %q", name),
			"Check the spelling or try the scientific name")
	}

	return c.GetByTaxID(ctx, taxID)
}

// GetByTaxID fetches the full record for a numeric taxonomy identifier.
func (c *Client) GetByTaxID(ctx context.Context, taxID int) (*Record, error) {
	const op errors.Op = "taxonomy.GetByTaxID"

	if taxID <= 0 {
		return nil, errors.Usage(op, fmt.Sprintf("invalid taxonomy ID: %d", taxID))
	}

	detailURL := fmt.Sprintf("%s/datasets/v2/taxonomy/taxon/%d", c.baseURL, taxID)

	var detail taxonResponse
	if err := c.getJSON(ctx, op, detailURL, &detail); err != nil {
		return nil, err
	}

	if len(detail.TaxonomyNodes) == 0 {
		return nil, errors.NotFound(op,
			fmt.Sprintf("Taxonomy ID %d not found", taxID),
			"Check that the taxonomy ID is correct")
	}

	node := detail.TaxonomyNodes[0].Taxonomy
	if node.TaxID == 0 {
		return nil, errors.NotFound(op,
			fmt.Sprintf("Taxonomy ID %d not found", taxID),
			"Check that the taxonomy ID is correct")
	}

	return recordFromNode(node), nil
}

// recordFromNode transcribes a remote taxonomy node into a Record.
func recordFromNode(node taxonomyNode) *Record {
	rec := &Record{
		TaxID:          node.TaxID,
		ScientificName: node.OrganismName,
		Rank:           node.Rank,
		ParentTaxID:    node.ParentTaxID,
		LineageTaxIDs:  node.Lineage,
		Lineage:        simplifiedLineage(node),
	}
	if len(node.CommonNames) > 0 {
		rec.CommonName = node.CommonNames[0]
	} else {
		rec.CommonName = node.GenbankCommonName
	}
	return rec
}

// simplifiedLineage flattens the classification block into an ordered
// root-to-parent chain. Ranks the service did not report are skipped, and
// the node's own rank is excluded: the lineage stops at the parent.
func simplifiedLineage(node taxonomyNode) []LineageNode {
	ranked := []struct {
		rank  string
		taxon *rankedTaxon
	}{
		{"superkingdom", node.Classification.Superkingdom},
		{"kingdom", node.Classification.Kingdom},
		{"phylum", node.Classification.Phylum},
		{"class", node.Classification.Class},
		{"order", node.Classification.Order},
		{"family", node.Classification.Family},
		{"genus", node.Classification.Genus},
		{"species", node.Classification.Species},
	}

	lineage := make([]LineageNode, 0, len(ranked))
	for _, r := range ranked {
		if r.taxon == nil || r.taxon.ID == node.TaxID {
			continue
		}
		lineage = append(lineage, LineageNode{
			TaxID: r.taxon.ID,
			Name:  r.taxon.Name,
			Rank:  r.rank,
		})
	}
	return lineage
}

// getJSON performs one GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, op errors.Op, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Network(op, c.host, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Network(op, c.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return errors.Remote(op, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Parse(op, err)
	}
	return nil
}
