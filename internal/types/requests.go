package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TextRequest carries free text for an extraction call
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// MatchRequest asks for a resume to be scored against a job description
type MatchRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required"`
	CandidateName  string `json:"candidate_name,omitempty" validate:"omitempty,max=200"`
	JobTitle       string `json:"job_title,omitempty" validate:"omitempty,max=200"`
}

// CandidateInput is one resume in a ranking request
type CandidateInput struct {
	ID         string `json:"id" validate:"required,max=100"`
	Name       string `json:"name,omitempty"`
	ResumeText string `json:"resume_text" validate:"required"`
}

// RankRequest asks for several resumes to be ranked against one job description
type RankRequest struct {
	JobDescription string           `json:"job_description" validate:"required"`
	Candidates     []CandidateInput `json:"candidates" validate:"required,min=1,max=200,dive"`
}

// EvaluateRequest asks for a single interview answer to be scored
type EvaluateRequest struct {
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	QuestionType string `json:"question_type,omitempty"`
}

// ReportRequest asks for a formatted evaluation report
type ReportRequest struct {
	EvaluateRequest
	Format string `json:"format,omitempty" validate:"omitempty,oneof=text markdown dict"`
}

// BatchRequest asks for several answers from one candidate to be evaluated together
type BatchRequest struct {
	CandidateName string            `json:"candidate_name,omitempty" validate:"omitempty,max=200"`
	Items         []EvaluateRequest `json:"items" validate:"required,min=1,max=100,dive"`
	Format        string            `json:"format,omitempty" validate:"omitempty,oneof=text markdown dict"`
}

// StartInterviewRequest opens a text interview session for a job
type StartInterviewRequest struct {
	CandidateName  string `json:"candidate_name,omitempty" validate:"omitempty,max=200"`
	JobTitle       string `json:"job_title,omitempty" validate:"omitempty,max=200"`
	JobDescription string `json:"job_description" validate:"required"`
	MaxQuestions   int    `json:"max_questions,omitempty" validate:"omitempty,min=1,max=20"`
}

// SubmitAnswerRequest submits the answer to the current interview question
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// Validate validates the TextRequest using the validator.
func (r *TextRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ReportRequest using the validator.
func (r *ReportRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SubmitAnswerRequest using the validator.
func (r *SubmitAnswerRequest) Validate() error {
	return validate.Struct(r)
}
