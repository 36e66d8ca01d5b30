package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/errors"
)

// Taxonomy handlers

func (s *Server) handleTaxonomySuggest(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	record, err := s.taxonomy.SearchByName(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleTaxonomyByID(w http.ResponseWriter, r *http.Request) {
	taxID, err := strconv.Atoi(mux.Vars(r)["taxID"])
	if err != nil {
		s.writeError(w, errors.Usage("api.taxonomy", "taxonomy ID must be a positive integer"))
		return
	}

	record, err := s.taxonomy.GetByTaxID(r.Context(), taxID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// Archive search handlers

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req ena.SearchRequest

	if r.Method == "POST" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.Usage("api.search", "Invalid request body"))
			return
		}
	} else {
		q := r.URL.Query()
		req.Query = q.Get("q")
		if req.Query == "" {
			req.Query = q.Get("query")
		}
		resultType := q.Get("type")
		if resultType == "" {
			resultType = q.Get("result_type")
		}
		req.ResultType = ena.ResultType(resultType)

		if limit := q.Get("limit"); limit != "" {
			if l, err := strconv.Atoi(limit); err == nil {
				req.Limit = l
			}
		}
		if offset := q.Get("offset"); offset != "" {
			if o, err := strconv.Atoi(offset); err == nil {
				req.Offset = o
			}
		}
		if fields := q.Get("fields"); fields != "" {
			req.Fields = strings.Split(fields, ",")
		}
	}

	if req.Query == "" {
		s.writeError(w, errors.Usage("api.search", "Missing required parameter: query"))
		return
	}
	if req.ResultType == "" {
		req.ResultType = ena.ResultTypeReadRun
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	response, err := s.archive.Search(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleFastq(w http.ResponseWriter, r *http.Request) {
	run := mux.Vars(r)["run"]

	result, err := s.archive.GetFastqURLs(r.Context(), run)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// Study metadata handlers

func (s *Server) handleGetStudy(w http.ResponseWriter, r *http.Request) {
	accession := mux.Vars(r)["accession"]

	result, err := s.studies.GetDetails(r.Context(), accession)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !result.Found {
		s.writeError(w, errors.NotFound("api.studies",
			"No study found for accession: "+accession,
			"Verify the accession exists in the archive"))
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleGetStudies resolves several accessions in one call. Per-accession
// failures are reported inside the body; the response is 200 as long as the
// batch itself was processable.
func (s *Server) handleGetStudies(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("accessions")
	if raw == "" {
		s.writeError(w, errors.Usage("api.studies", "Missing required parameter: accessions"))
		return
	}

	accessions := []string{}
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accessions = append(accessions, a)
		}
	}
	if len(accessions) == 0 {
		s.writeError(w, errors.Usage("api.studies", "Missing required parameter: accessions"))
		return
	}

	results := s.studies.GetMultipleDetails(r.Context(), accessions)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// Workflow catalog handlers

func (s *Server) handleWorkflows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil {
			limit = l
		}
	}

	workflows, err := s.workflows.Search(r.Context(), category, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(workflows),
		"workflows": workflows,
	})
}

func (s *Server) handleWorkflowCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.workflows.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":      len(categories),
		"categories": categories,
	})
}
