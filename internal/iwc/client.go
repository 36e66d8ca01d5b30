// Package iwc provides a client for the IWC (Intergalactic Workflow
// Commission) workflow manifest, a single static JSON document listing all
// published Galaxy workflows. The manifest offers no server-side filtering,
// so category filtering, the tested-workflow cut, and limits are all applied
// client-side after one fetch.
package iwc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/errors"
)

const userAgent = "bioseek-iwc/1.0"

// Workflow is one cataloged analysis workflow, transcribed from the
// manifest.
type Workflow struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	TrsID       string   `json:"trs_id"`
	IwcID       string   `json:"iwc_id,omitempty"`
	Release     string   `json:"release,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	License     string   `json:"license,omitempty"`
	Creators    []Creator `json:"creators,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Creator identifies a workflow author as declared in the manifest.
type Creator struct {
	Class string `json:"class,omitempty"`
	Name  string `json:"name,omitempty"`
}

// manifest shapes: repositories, each holding workflows with a nested
// definition. Only the fields this client reads are modeled.
type manifestRepo struct {
	Workflows []manifestWorkflow `json:"workflows"`
}

type manifestWorkflow struct {
	TrsID       string          `json:"trsID"`
	IwcID       string          `json:"iwcID"`
	Collections []string        `json:"collections"`
	Definition  definition      `json:"definition"`
	Tests       json.RawMessage `json:"tests"`
}

type definition struct {
	Name       string    `json:"name"`
	Annotation string    `json:"annotation"`
	Release    string    `json:"release"`
	License    string    `json:"license"`
	Creator    []Creator `json:"creator"`
	Tags       []string  `json:"tags"`
}

// Client fetches and filters the workflow manifest.
type Client struct {
	manifestURL string
	host        string
	httpClient  *http.Client
}

// NewClient creates a workflow catalog client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	host := "iwc.galaxyproject.org"
	if u, err := url.Parse(cfg.Workflows.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &Client{
		manifestURL: cfg.Workflows.BaseURL,
		host:        host,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// Search fetches the manifest and returns workflows filtered by category.
// Workflows without a declared test are excluded unconditionally: they are
// incomplete and must never be recommended. Category matching is
// case-insensitive substring membership against each declared category, the
// catalog's documented convention. A limit <= 0 means no limit; truncation
// happens after filtering.
func (c *Client) Search(ctx context.Context, category string, limit int) ([]Workflow, error) {
	workflows, err := c.fetchWorkflows(ctx, "iwc.Search")
	if err != nil {
		return nil, err
	}

	if category != "" {
		workflows = filterByCategory(workflows, category)
	}
	if limit > 0 && len(workflows) > limit {
		workflows = workflows[:limit]
	}
	return workflows, nil
}

// ListCategories returns the distinct category names across all qualifying
// workflows, sorted for stable output.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	workflows, err := c.fetchWorkflows(ctx, "iwc.ListCategories")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, w := range workflows {
		for _, cat := range w.Categories {
			if cat != "" && !seen[cat] {
				seen[cat] = true
				categories = append(categories, cat)
			}
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// fetchWorkflows downloads the manifest and flattens it into qualifying
// workflow descriptors.
func (c *Client) fetchWorkflows(ctx context.Context, op errors.Op) ([]Workflow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return nil, errors.Network(op, c.host, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network(op, c.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, errors.Remote(op, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var repos []manifestRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.Parse(op, err)
	}

	return extractWorkflows(repos), nil
}

// extractWorkflows flattens the manifest, dropping workflows without tests.
func extractWorkflows(repos []manifestRepo) []Workflow {
	workflows := make([]Workflow, 0)
	for _, repo := range repos {
		for _, mw := range repo.Workflows {
			if len(mw.Tests) == 0 || string(mw.Tests) == "null" {
				continue
			}
			workflows = append(workflows, Workflow{
				Name:        mw.Definition.Name,
				Description: mw.Definition.Annotation,
				TrsID:       mw.TrsID,
				IwcID:       mw.IwcID,
				Release:     mw.Definition.Release,
				Categories:  mw.Collections,
				License:     mw.Definition.License,
				Creators:    mw.Definition.Creator,
				Tags:        mw.Definition.Tags,
			})
		}
	}
	return workflows
}

// filterByCategory keeps workflows with at least one category containing
// the requested category, compared case-insensitively.
func filterByCategory(workflows []Workflow, category string) []Workflow {
	needle := strings.ToLower(category)
	out := make([]Workflow, 0)
	for _, w := range workflows {
		for _, cat := range w.Categories {
			if strings.Contains(strings.ToLower(cat), needle) {
				out = append(out, w)
				break
			}
		}
	}
	return out
}
