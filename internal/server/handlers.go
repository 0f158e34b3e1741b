package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/language"
	"github.com/jonathan/resume-analyzer/internal/orchestrator"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeRequest represents the request body for /analyze and /analyze/stream
type AnalyzeRequest struct {
	Text      string `json:"text"`
	Format    string `json:"format,omitempty"` // txt (default), md or html
	TargetJob string `json:"target_job,omitempty"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	RunID  string                      `json:"run_id"`
	Result *types.ResumeAnalysisResult `json:"result"`
	Steps  []orchestrator.Step         `json:"steps"`
	Source *ingestion.Metadata         `json:"source"`
}

// StageResponse describes one pipeline stage for /stages
type StageResponse struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`
}

// ValidateResponse represents the response for /validate
type ValidateResponse struct {
	Valid  bool         `json:"valid"`
	Fields []FieldError `json:"fields,omitempty"`
}

// decodeAnalyzeRequest reads, bounds, cleans and validates an analysis request
// before any stage runs, so failures can still be reported as plain JSON.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (types.AnalysisRequest, *ingestion.Metadata, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return types.AnalysisRequest{}, nil, &ErrRequestBody{Cause: err}
	}
	if req.Text == "" {
		return types.AnalysisRequest{}, nil, &ErrValidation{Field: "text", Message: "is required"}
	}

	format := ingestion.FormatText
	if req.Format != "" {
		format = ingestion.Format(req.Format)
		switch format {
		case ingestion.FormatText, ingestion.FormatMarkdown, ingestion.FormatHTML:
		default:
			return types.AnalysisRequest{}, nil, &ErrValidation{Field: "format", Message: "must be one of txt, md, html"}
		}
	}

	text, meta, err := ingestion.Ingest(req.Text, "request", format)
	if err != nil {
		return types.AnalysisRequest{}, nil, err
	}

	analysisReq := types.AnalysisRequest{Text: text, TargetJob: req.TargetJob}
	if err := analysisReq.Validate(); err != nil {
		return types.AnalysisRequest{}, nil, &ErrValidation{Field: "target_job", Message: "must be at most 500 characters"}
	}
	return analysisReq, meta, nil
}

// handleAnalyze runs the full pipeline and returns the result in one response
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, meta, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Language", language.Tag(report.Result.Language).String())
	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:  report.RunID,
		Result: report.Result,
		Steps:  report.Steps,
		Source: meta,
	})
}

// handleAnalyzeStream runs the pipeline and streams every step transition via SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, meta, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	logger := s.logger
	analyzer := s.analyzer.With(pipeline.WithProgress(func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			logger.Warn("failed to write SSE event", "run_id", event.RunID, "error", err)
		}
	}))

	report, err := analyzer.Analyze(r.Context(), req)
	if err != nil {
		runID := ""
		if report != nil {
			runID = report.RunID
		}
		sse.WriteError(runID, err.Error(), HTTPStatus(err))
		return
	}

	if err := sse.WriteEvent("result", AnalyzeResponse{
		RunID:  report.RunID,
		Result: report.Result,
		Steps:  report.Steps,
		Source: meta,
	}); err != nil {
		logger.Warn("failed to write SSE result", "run_id", report.RunID, "error", err)
		return
	}
	sse.WriteComplete(report.RunID, "completed")
}

// handleValidate checks a posted result document against the result schema
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBytes))
	if err != nil {
		s.errorResponse(w, &ErrRequestBody{Cause: err})
		return
	}

	err = schemas.ValidateResultJSON(data)
	if err == nil {
		s.jsonResponse(w, http.StatusOK, ValidateResponse{Valid: true})
		return
	}

	var verr *schemas.ValidationError
	if !errors.As(err, &verr) {
		s.errorResponse(w, &ErrRequestBody{Cause: err})
		return
	}
	resp := ValidateResponse{Valid: false}
	for _, fe := range verr.Errors {
		resp.Fields = append(resp.Fields, FieldError{Field: fe.Field, Message: fe.Message})
	}
	s.jsonResponse(w, http.StatusUnprocessableEntity, resp)
}

// handleStages lists the pipeline stages in execution order
func (s *Server) handleStages(w http.ResponseWriter, _ *http.Request) {
	stages := make([]StageResponse, 0, len(steps.StepRegistry))
	for _, def := range steps.StepRegistry {
		stages = append(stages, StageResponse{
			Name:         def.Name,
			Title:        def.Title,
			Description:  def.Description,
			Dependencies: append([]string{}, def.Dependencies...),
		})
	}
	s.jsonResponse(w, http.StatusOK, stages)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
