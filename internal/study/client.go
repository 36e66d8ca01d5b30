// Package study fetches descriptive metadata for archive studies
// (BioProjects) by accession, using the same portal search endpoint as the
// archive search client but fixed to study-level results. Absence of a
// study is a graceful outcome, not a failure: a batch lookup always returns
// one entry per requested accession.
package study

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/errors"
)

// detailFields is the fixed field list requested for study details.
var detailFields = []string{
	"study_accession", "study_title", "study_description", "study_alias",
	"center_name", "first_public", "last_updated", "scientific_name", "tax_id",
}

// accessionPattern accepts the archive's two BioProject conventions
// (PRJEB…, PRJNA…, PRJDB…) and secondary study accessions (ERP/SRP/DRP).
var accessionPattern = regexp.MustCompile(`^(PRJ[EDN][A-Z]\d+|[ESD]RP\d+)$`)

// Details holds the descriptive metadata of one study, transcribed from the
// portal record.
type Details struct {
	Accession      string `json:"study_accession"`
	Title          string `json:"study_title,omitempty"`
	Description    string `json:"study_description,omitempty"`
	Alias          string `json:"study_alias,omitempty"`
	CenterName     string `json:"center_name,omitempty"`
	FirstPublic    string `json:"first_public,omitempty"`
	LastUpdated    string `json:"last_updated,omitempty"`
	ScientificName string `json:"scientific_name,omitempty"`
	TaxID          string `json:"tax_id,omitempty"`
}

// Result is the outcome of one accession lookup. Found is false when the
// archive has no record for the accession; Err is set only for failures
// (transport, remote, usage), never for absence.
type Result struct {
	Accession string              `json:"accession"`
	Found     bool                `json:"found"`
	Details   *Details            `json:"details,omitempty"`
	Err       *errors.ClientError `json:"error,omitempty"`
}

// Client fetches study metadata from the archive portal.
type Client struct {
	archive *ena.Client
}

// NewClient creates a study metadata client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{archive: ena.NewClient(cfg)}
}

// ValidateAccession rejects strings that cannot be a study accession under
// either of the archive's conventions. This is a format check only; whether
// the study exists is decided by the archive.
func ValidateAccession(accession string) error {
	const op errors.Op = "study.ValidateAccession"
	if !accessionPattern.MatchString(strings.ToUpper(strings.TrimSpace(accession))) {
		return errors.Usage(op, fmt.Sprintf(
			"unparseable study accession: %q (expected e.g. PRJEB1234, PRJNA123456 or ERP123456)", accession))
	}
	return nil
}

// GetDetails fetches the metadata record for one study accession. A study
// the archive does not know yields Found=false with a nil error.
func (c *Client) GetDetails(ctx context.Context, accession string) (*Result, error) {
	accession = strings.ToUpper(strings.TrimSpace(accession))
	if err := ValidateAccession(accession); err != nil {
		return nil, err
	}

	resp, err := c.archive.Search(ctx, ena.SearchRequest{
		Query:      fmt.Sprintf("study_accession=%s", accession),
		ResultType: ena.ResultTypeStudy,
		Limit:      1,
		Fields:     detailFields,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Accession: accession}
	if len(resp.Records) == 0 {
		return result, nil
	}

	result.Found = true
	result.Details = detailsFromRecord(accession, resp.Records[0])
	return result, nil
}

// GetMultipleDetails fetches metadata for several accessions, one request
// per accession. A failure for one accession is recorded on its Result and
// never aborts the batch, so the returned slice always has one entry per
// input in input order.
func (c *Client) GetMultipleDetails(ctx context.Context, accessions []string) []Result {
	results := make([]Result, 0, len(accessions))
	for _, accession := range accessions {
		result, err := c.GetDetails(ctx, accession)
		if err != nil {
			results = append(results, Result{
				Accession: strings.ToUpper(strings.TrimSpace(accession)),
				Err:       errors.AsClient(err),
			})
			continue
		}
		results = append(results, *result)
	}
	return results
}

// detailsFromRecord transcribes a flat portal record into Details. Missing
// fields stay empty rather than failing the lookup.
func detailsFromRecord(accession string, rec ena.Record) *Details {
	d := &Details{
		Accession:      rec["study_accession"],
		Title:          rec["study_title"],
		Description:    rec["study_description"],
		Alias:          rec["study_alias"],
		CenterName:     rec["center_name"],
		FirstPublic:    rec["first_public"],
		LastUpdated:    rec["last_updated"],
		ScientificName: rec["scientific_name"],
		TaxID:          rec["tax_id"],
	}
	if d.Accession == "" {
		d.Accession = accession
	}
	return d
}
