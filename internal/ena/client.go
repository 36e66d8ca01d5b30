package ena

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

const userAgent = "bioseek-ena/1.0"

// maxGetURLLength is the point at which a search is issued as a
// form-encoded POST instead of a GET, to stay clear of URL length limits
// on long caller-supplied filter expressions.
const maxGetURLLength = 2000

// enaQueryMarkers are substrings that identify a query already written in
// ENA filter syntax; such queries are passed through unchanged.
var enaQueryMarkers = []string{
	"tax_eq", "tax_tree", "study_accession", "sample_accession", "run_accession", "=",
}

// Client queries the ENA portal search API. It is stateless; every call is
// a single synchronous request with no caching and no retries.
type Client struct {
	baseURL    string
	host       string
	httpClient *http.Client
}

// NewClient creates an archive search client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	host := "www.ebi.ac.uk"
	if u, err := url.Parse(cfg.Archive.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.Archive.BaseURL, "/"),
		host:       host,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// FormatQuery converts a caller query into ENA filter syntax. A query that
// already uses ENA syntax is returned unchanged; a purely numeric query is
// treated as a taxonomy ID and wrapped in tax_tree(); anything else is
// treated as an organism name and wrapped in a scientific_name equality.
func FormatQuery(query string) string {
	for _, marker := range enaQueryMarkers {
		if strings.Contains(query, marker) {
			return query
		}
	}

	trimmed := strings.TrimSpace(query)
	if trimmed != "" && isDigits(trimmed) {
		return fmt.Sprintf("tax_tree(%s)", trimmed)
	}

	return fmt.Sprintf("scientific_name=%q", query)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Search runs one portal search and normalizes the response. A 204 from the
// portal means zero matches and yields an empty, successful response. All
// failures come back as *errors.ClientError; nothing panics past this
// boundary and nothing is retried here.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	const op errors.Op = "ena.Search"

	if !validResultTypes[req.ResultType] {
		return nil, errors.Usage(op, fmt.Sprintf("unrecognized result type: %s", req.ResultType))
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = DefaultFields(req.ResultType)
	}

	params := url.Values{}
	params.Set("result", string(req.ResultType))
	params.Set("query", FormatQuery(req.Query))
	params.Set("limit", strconv.Itoa(req.Limit))
	params.Set("offset", strconv.Itoa(req.Offset))
	params.Set("format", "json")
	params.Set("fields", strings.Join(fields, ","))

	records, err := c.fetch(ctx, op, params)
	if err != nil {
		return nil, err
	}

	resp := &SearchResponse{
		Query:      req.Query,
		ResultType: req.ResultType,
		Count:      len(records),
		Records:    records,
	}

	if req.ResultType == ResultTypeReadRun && len(records) > 0 {
		resp.Groups = groupByStudy(records)
		resp.StudyCount = len(resp.Groups)
	}

	return resp, nil
}

// GetFastqURLs looks up the FASTQ download URLs for a single run accession.
// A run that exists but reports no fastq_ftp value yields an empty URL list.
func (c *Client) GetFastqURLs(ctx context.Context, runAccession string) (*FastqResult, error) {
	const op errors.Op = "ena.GetFastqURLs"

	resp, err := c.Search(ctx, SearchRequest{
		Query:      fmt.Sprintf("run_accession=%s", runAccession),
		ResultType: ResultTypeReadRun,
		Limit:      1,
		Fields:     []string{"run_accession", "fastq_ftp", "fastq_md5", "fastq_bytes"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, errors.NotFound(op,
			fmt.Sprintf("Run accession %s not found", runAccession),
			"Check that the run accession is correct")
	}

	run := resp.Records[0]
	return &FastqResult{
		RunAccession: run["run_accession"],
		URLs:         DeriveHTTPSURLs(run["fastq_ftp"]),
		FileSizes:    SplitFieldList(run["fastq_bytes"]),
		MD5Checksums: SplitFieldList(run["fastq_md5"]),
	}, nil
}

// fetch performs the HTTP round trip and decodes the portal's JSON rows.
func (c *Client) fetch(ctx context.Context, op errors.Op, params url.Values) ([]Record, error) {
	searchURL := c.baseURL + "/search?" + params.Encode()

	var httpReq *http.Request
	var err error
	if len(searchURL) > maxGetURLLength {
		// Same query as a form-encoded POST; the portal accepts both.
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/search", strings.NewReader(params.Encode()))
		if err == nil {
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	}
	if err != nil {
		return nil, errors.Network(op, c.host, err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Network(op, c.host, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		// Zero matches. Not an error.
		return []Record{}, nil
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, errors.Remote(op, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Network(op, c.host, err)
	}
	if len(body) == 0 {
		return []Record{}, nil
	}

	return decodeRecords(op, body)
}

// decodeRecords parses the portal's JSON array of rows into flat records,
// preserving server order. Values are stringified; null fields are omitted
// from the record rather than failing the call.
func decodeRecords(op errors.Op, body []byte) ([]Record, error) {
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Parse(op, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for key, value := range row {
			switch v := value.(type) {
			case string:
				rec[key] = v
			case float64:
				rec[key] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				rec[key] = strconv.FormatBool(v)
			case nil:
				// field absent for this row
			default:
				rec[key] = fmt.Sprintf("%v", v)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
