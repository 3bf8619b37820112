package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-scan/internal/analysis"
	"github.com/jonathan/ats-scan/internal/ingestion"
	"github.com/jonathan/ats-scan/internal/keywords"
)

// AnalyzeRequest is the request body for POST /analyze. Exactly one of
// JobDescription and JobDescriptionHTML must be set.
type AnalyzeRequest struct {
	JobDescription     string `json:"job_description,omitempty"`
	JobDescriptionHTML string `json:"job_description_html,omitempty"`
	ResumeText         string `json:"resume_text" validate:"required"`
	KeywordCount       int    `json:"keyword_count,omitempty" validate:"omitempty,min=1,max=100"`
}

// ExtractRequest is the request body for POST /extract.
type ExtractRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	KeywordCount   int    `json:"keyword_count,omitempty" validate:"omitempty,min=1,max=100"`
}

// ExtractResponse is the response body for POST /extract.
type ExtractResponse struct {
	JobTitle     string                      `json:"job_title,omitempty"`
	KeywordCount int                         `json:"keyword_count"`
	Keywords     *keywords.ExtractedKeywords `json:"keywords"`
}

// handleAnalyze runs the full pipeline for one (JD, résumé) pair.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jd := ingestion.NormalizeText(req.JobDescription)
	switch {
	case jd == "" && req.JobDescriptionHTML == "":
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_description_html is required")
		return
	case jd != "" && req.JobDescriptionHTML != "":
		s.errorResponse(w, http.StatusBadRequest, "job_description and job_description_html are mutually exclusive")
		return
	case jd == "":
		text, err := ingestion.ExtractText(req.JobDescriptionHTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to parse job_description_html: "+err.Error())
			return
		}
		jd = text
	}

	report := analysis.Analyze(jd, req.ResumeText, analysis.Options{
		KeywordCount: req.KeywordCount,
		Ref:          s.ref,
		Weights:      s.weights,
	})

	s.jsonResponse(w, http.StatusOK, report)
}

// handleExtract extracts keywords from a JD without matching.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	extractor := keywords.NewExtractor(s.ref)
	count := req.KeywordCount
	if count <= 0 {
		count = extractor.DynamicCount(req.JobDescription)
	}

	kw := extractor.Extract(req.JobDescription, count)

	resp := ExtractResponse{
		// Title is informational; absence is not an error.
		JobTitle:     kw.JobTitle,
		KeywordCount: count,
		Keywords:     kw,
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
