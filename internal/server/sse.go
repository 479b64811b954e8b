package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Batch stream event names
const (
	EventEvaluation = "evaluation"
	EventError      = "error"
	EventComplete   = "complete"
)

var errStreamingUnsupported = errors.New("streaming not supported")

// EvaluationEvent is the payload of one evaluation event
type EvaluationEvent struct {
	Index      int                     `json:"index"`
	Question   string                  `json:"question"`
	Evaluation *types.AnswerEvaluation `json:"evaluation"`
}

// CompleteEvent is the payload of the final event of a batch stream
type CompleteEvent struct {
	TotalQuestions int                `json:"total_questions"`
	AverageScores  reporting.Averages `json:"average_scores"`
}

// SSEWriter writes Server-Sent Events. Every event carries an increasing id.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

// NewSSEWriter sends the stream headers and returns a writer for the events
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errStreamingUnsupported
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends data as JSON under the event name
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}
	s.nextID++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteEvaluation sends the evaluation of the item at index
func (s *SSEWriter) WriteEvaluation(index int, question string, ev *types.AnswerEvaluation) error {
	return s.WriteEvent(EventEvaluation, EvaluationEvent{Index: index, Question: question, Evaluation: ev})
}

// WriteError sends an error event. The stream ends after it.
func (s *SSEWriter) WriteError(message string) error {
	return s.WriteEvent(EventError, map[string]string{"error": message})
}

// WriteComplete sends the batch averages as the final event
func (s *SSEWriter) WriteComplete(report *reporting.BatchReport) error {
	return s.WriteEvent(EventComplete, CompleteEvent{
		TotalQuestions: report.Len(),
		AverageScores:  report.Averages(),
	})
}
