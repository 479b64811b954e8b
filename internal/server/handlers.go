package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/interview"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/types"
)

// maxBodyBytes caps request bodies; resumes and batches fit comfortably
const maxBodyBytes = 4 << 20

// MatchResponse is returned by /v1/match
type MatchResponse struct {
	ScreeningID string                `json:"screening_id,omitempty"`
	JobHash     string                `json:"job_hash"`
	Result      *types.MatchResult    `json:"result"`
	Summary     *ranking.MatchSummary `json:"summary,omitempty"`
}

// RankResponse is returned by /v1/rank
type RankResponse struct {
	JobHash    string                   `json:"job_hash"`
	Candidates []ranking.CandidateScore `json:"candidates"`
}

// BatchResponse is returned by /v1/batch for the dict format
type BatchResponse struct {
	ReportID string         `json:"report_id,omitempty"`
	Report   map[string]any `json:"report"`
}

// AnswerResponse is returned after an interview answer is submitted
type AnswerResponse struct {
	Evaluation   *types.AnswerEvaluation `json:"evaluation"`
	Session      *interview.Session      `json:"session"`
	NextQuestion *interview.Question     `json:"next_question,omitempty"`
	ReportID     string                  `json:"report_id,omitempty"`
}

type validatable interface {
	Validate() error
}

// decodeJSON reads a single JSON object into dst and validates it
func decodeJSON(w http.ResponseWriter, r *http.Request, dst validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &ErrValidation{Field: "body", Message: "must contain a single JSON object"}
	}
	return dst.Validate()
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// formatParam returns the ?format= query value, falling back to the body value
func formatParam(r *http.Request, fallback string) (reporting.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return reporting.ParseFormat(q)
	}
	return reporting.ParseFormat(fallback)
}

// writeOutput writes a rendered report: dict as JSON, text and markdown as-is
func (s *Server) writeOutput(w http.ResponseWriter, out *reporting.Output) {
	switch out.Format {
	case reporting.FormatDict:
		s.jsonResponse(w, http.StatusOK, out.Dict)
	case reporting.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, out.Text+"\n")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, out.Text+"\n")
	}
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ExtractSkills(req.Text))
}

func (s *Server) handleExtractEducation(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ExtractEducation(req.Text))
}

func (s *Server) handleExtractExperience(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ExtractExperience(req.Text))
}

func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ParseRequirements(req.Text))
}

// handleMatch scores one resume. The result is stored when persistence is on, and
// ?summary=true adds an LLM note.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := s.engine.CalculateMatchScore(req.JobDescription, req.ResumeText)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := MatchResponse{JobHash: screening.JobHash(req.JobDescription), Result: result}
	if r.URL.Query().Get("summary") == "true" {
		summary, err := s.engine.Summarize(r.Context(), req.JobDescription, req.CandidateName, result)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.Summary = summary
	}
	if s.store != nil {
		id, err := s.store.SaveScreening(r.Context(), db.ScreeningInput{
			JobHash:       resp.JobHash,
			JobTitle:      req.JobTitle,
			CandidateName: req.CandidateName,
			Result:        result,
		})
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.ScreeningID = id.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	ranked, err := s.engine.RankCandidates(r.Context(), req.JobDescription, req.Candidates)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, RankResponse{JobHash: screening.JobHash(req.JobDescription), Candidates: ranked})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	ev, err := s.engine.EvaluateAnswer(req.Question, req.Answer, req.QuestionType)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ev)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	format, err := formatParam(r, req.Format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.engine.GenerateReport(req.Question, req.Answer, req.QuestionType, string(format))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeOutput(w, out)
}

// handleBatch evaluates a candidate's answers together. The dict format is the
// default here and wraps the report with its stored id.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	fallback := req.Format
	if fallback == "" {
		fallback = string(reporting.FormatDict)
	}
	format, err := formatParam(r, fallback)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	report, err := s.engine.EvaluateBatch(r.Context(), req.CandidateName, req.Items)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var reportID string
	if s.store != nil {
		id, err := s.store.SaveEvaluationReport(r.Context(), report, "")
		if err != nil {
			s.fail(w, r, err)
			return
		}
		reportID = id.String()
	}

	out, err := report.Render(format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if format != reporting.FormatDict {
		if reportID != "" {
			w.Header().Set("X-Report-ID", reportID)
		}
		s.writeOutput(w, out)
		return
	}
	s.jsonResponse(w, http.StatusOK, BatchResponse{ReportID: reportID, Report: out.Dict})
}

// handleBatchStream evaluates items in order and emits one SSE event per item,
// then the averages.
func (s *Server) handleBatchStream(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	report := reporting.NewBatchReport(req.CandidateName)
	for i, item := range req.Items {
		if err := r.Context().Err(); err != nil {
			return
		}
		ev, err := s.engine.EvaluateAnswer(item.Question, item.Answer, item.QuestionType)
		if err == nil {
			err = report.Add(reporting.Entry{Question: item.Question, Answer: item.Answer, QuestionType: ev.QuestionType, Evaluation: ev})
		}
		if err != nil {
			s.streamError(sse, err)
			return
		}
		if err := sse.WriteEvaluation(i, item.Question, ev); err != nil {
			s.log.Warn("writing SSE event", zap.Error(err))
			return
		}
	}
	if err := sse.WriteComplete(report); err != nil {
		s.log.Warn("writing SSE event", zap.Error(err))
	}
}

func (s *Server) streamError(sse *SSEWriter, err error) {
	if werr := sse.WriteError(errorMessage(err)); werr != nil {
		s.log.Warn("writing SSE error event", zap.Error(werr))
	}
}

func (s *Server) handleListScreenings(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrPersistenceDisabled)
		return
	}
	jobHash := r.URL.Query().Get("job_hash")
	if jobHash == "" {
		s.fail(w, r, &ErrValidation{Field: "job_hash", Message: "is required"})
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.fail(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}
	screenings, err := s.store.ListScreenings(r.Context(), jobHash, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if screenings == nil {
		screenings = []db.Screening{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job_hash": jobHash, "screenings": screenings})
}

func (s *Server) handleGetScreening(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrPersistenceDisabled)
		return
	}
	id, err := parseID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sc, err := s.store.GetScreening(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sc)
}

// handleGetReport returns a stored report as saved, or rendered when ?format= is set
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrPersistenceDisabled)
		return
	}
	id, err := parseID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	stored, err := s.store.GetEvaluationReport(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == "" {
		s.jsonResponse(w, http.StatusOK, stored)
		return
	}
	format, err := formatParam(r, "")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	report, err := stored.Report()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := report.Render(format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeOutput(w, out)
}

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req types.StartInterviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	session, err := s.interviews.Start(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.Info("interview started", logger.StringFields(
		logger.StringField{Key: logger.FieldSessionID, Value: session.ID},
		logger.StringField{Key: logger.FieldCandidate, Value: session.CandidateName},
	)...)
	s.jsonResponse(w, http.StatusCreated, session)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	session, err := s.interviews.Get(r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	if err := s.interviews.Delete(r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmitAnswer scores the answer to the current question. The finished
// interview is stored when persistence is on.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req types.SubmitAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	ev, session, err := s.interviews.SubmitAnswer(id, req.Answer)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := AnswerResponse{Evaluation: ev, Session: session}
	if q, ok := session.CurrentQuestion(); ok {
		resp.NextQuestion = &q
	}
	if session.Status == interview.StatusCompleted && s.store != nil {
		report, err := s.interviews.Results(id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		reportID, err := s.store.SaveEvaluationReport(r.Context(), report, id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.ReportID = reportID.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleInterviewReport(w http.ResponseWriter, r *http.Request) {
	format, err := formatParam(r, "")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.interviews.Report(r.PathValue("id"), format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeOutput(w, out)
}
