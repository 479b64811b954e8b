// Package screening is the entry point to the extraction and scoring engine. It
// binds one vocabulary to every extractor and scorer and fans batch work out over a
// bounded worker pool.
package screening

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-screener/internal/education"
	"github.com/jonathan/candidate-screener/internal/evaluation"
	"github.com/jonathan/candidate-screener/internal/experience"
	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/skills"
	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

// Options configures an Engine. Zero values select defaults.
type Options struct {
	// Vocabulary drives every extractor; nil means vocab.Default()
	Vocabulary *vocab.Vocabulary
	// Now is the clock for open-ended employment ranges; nil means time.Now
	Now func() time.Time
	// Workers bounds batch concurrency; zero or less means GOMAXPROCS
	Workers int
	// LLM enables narrative summaries; nil disables them
	LLM    llm.Client
	Logger *zap.Logger
}

// Engine exposes the screening operations. It is safe for concurrent use.
type Engine struct {
	vocab      *vocab.Vocabulary
	skills     *skills.Extractor
	education  *education.Extractor
	experience *experience.Extractor
	scorer     *ranking.Scorer
	evaluator  *evaluation.Evaluator
	llm        llm.Client
	workers    int
	log        *zap.Logger
}

// New creates an Engine from opts
func New(opts Options) *Engine {
	v := opts.Vocabulary
	if v == nil {
		v = vocab.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		vocab:      v,
		skills:     skills.NewExtractor(v),
		education:  education.NewExtractor(v),
		experience: experience.NewExtractor(v, opts.Now),
		scorer:     ranking.NewScorer(v, opts.Now),
		evaluator:  evaluation.NewEvaluator(v),
		llm:        opts.LLM,
		workers:    workers,
		log:        logger.WithFields(opts.Logger),
	}
}

// Vocabulary returns the vocabulary the engine was built with
func (e *Engine) Vocabulary() *vocab.Vocabulary { return e.vocab }

// Evaluator returns the answer evaluator, for callers that run their own sessions
func (e *Engine) Evaluator() *evaluation.Evaluator { return e.evaluator }

// ExtractSkills returns the technical and soft skills mentioned in text
func (e *Engine) ExtractSkills(text string) types.SkillProfile {
	return e.skills.Extract(text)
}

// ExtractEducation returns the degrees mentioned in text
func (e *Engine) ExtractEducation(text string) types.EducationProfile {
	return e.education.Extract(text)
}

// ExtractExperience returns the employment history found in text
func (e *Engine) ExtractExperience(text string) types.ExperienceProfile {
	return e.experience.Extract(text)
}

// ParseRequirements returns what a job description asks of a candidate
func (e *Engine) ParseRequirements(jd string) types.JobRequirements {
	return e.scorer.Requirements(jd)
}

// CalculateMatchScore scores resume against jd
func (e *Engine) CalculateMatchScore(jd, resume string) (*types.MatchResult, error) {
	result, err := e.scorer.Score(jd, resume)
	if err != nil {
		return nil, err
	}
	e.log.Debug("match scored",
		append(logger.ScreeningFields("match", "", JobHash(jd)),
			zap.Int("overall_percent", result.OverallScorePercent),
			zap.Int("matched_skills", len(result.MatchedSkills)),
			zap.Int("missing_skills", len(result.MissingSkills)))...)
	return result, nil
}

// EvaluateAnswer scores one interview answer
func (e *Engine) EvaluateAnswer(question, answer, questionType string) (*types.AnswerEvaluation, error) {
	return e.evaluator.Evaluate(question, answer, questionType)
}

// GenerateReport evaluates an answer and renders the result. format only changes
// the presentation.
func (e *Engine) GenerateReport(question, answer, questionType, format string) (*reporting.Output, error) {
	f, err := reporting.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	ev, err := e.evaluator.Evaluate(question, answer, questionType)
	if err != nil {
		return nil, err
	}
	return reporting.Render(reporting.Entry{
		Question:     question,
		Answer:       answer,
		QuestionType: ev.QuestionType,
		Evaluation:   ev,
	}, f)
}

// EvaluateBatch scores every item concurrently and collects them, in input order,
// into a new report for candidate. The first invalid item fails the whole batch.
func (e *Engine) EvaluateBatch(ctx context.Context, candidate string, items []types.EvaluateRequest) (*reporting.BatchReport, error) {
	results := make([]*types.AnswerEvaluation, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, item := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ev, err := e.evaluator.Evaluate(item.Question, item.Answer, item.QuestionType)
			if err != nil {
				return fmt.Errorf("item %d: %w", i+1, err)
			}
			results[i] = ev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := reporting.NewBatchReport(candidate)
	for i, item := range items {
		if err := report.Add(reporting.Entry{
			Question:     item.Question,
			Answer:       item.Answer,
			QuestionType: results[i].QuestionType,
			Evaluation:   results[i],
		}); err != nil {
			return nil, err
		}
	}
	e.log.Debug("batch evaluated",
		append(logger.ScreeningFields("batch", candidate, ""),
			zap.Int("items", len(items)),
			zap.Int("average_percent", report.Averages().OverallPercent))...)
	return report, nil
}

// RankCandidates scores every candidate concurrently against jd and returns them
// best first. Ties break by candidate id.
func (e *Engine) RankCandidates(ctx context.Context, jd string, candidates []types.CandidateInput) ([]ranking.CandidateScore, error) {
	if err := types.RequireText("job_description", jd); err != nil {
		return nil, err
	}
	reqs := e.scorer.Requirements(jd)
	scores := make([]ranking.CandidateScore, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			cs, err := e.scorer.ScoreCandidate(reqs, jd, c)
			if err != nil {
				return err
			}
			scores[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := ranking.Rank(scores)
	e.log.Debug("candidates ranked",
		append(logger.ScreeningFields("rank", "", JobHash(jd)), zap.Int("candidates", len(ranked)))...)
	return ranked, nil
}

// Summarize asks the configured LLM for a narrative note on a match result
func (e *Engine) Summarize(ctx context.Context, jd, candidateName string, result *types.MatchResult) (*ranking.MatchSummary, error) {
	if e.llm == nil {
		return nil, ErrLLMDisabled
	}
	summary, err := ranking.SummarizeMatch(ctx, e.llm, jd, candidateName, result)
	if err != nil {
		e.log.Warn("match summary failed", append(logger.ScreeningFields("summarize", candidateName, JobHash(jd)), zap.Error(err))...)
		return nil, err
	}
	return summary, nil
}

// SummarizeInterview asks the configured LLM for a short note on a batch of answers
func (e *Engine) SummarizeInterview(ctx context.Context, report *reporting.BatchReport) (string, error) {
	if e.llm == nil {
		return "", ErrLLMDisabled
	}
	if report == nil || report.Len() == 0 {
		return "", &types.InputError{Field: "report", Message: "must contain at least one evaluation"}
	}
	text, err := e.llm.GenerateContent(ctx, buildInterviewPrompt(report), llm.TierLite)
	if err != nil {
		e.log.Warn("interview summary failed", append(logger.ScreeningFields("summarize", report.Candidate(), ""), zap.Error(err))...)
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}
	return textutil.Normalize(text), nil
}

// JobHash identifies a job description by the SHA-256 of its normalized text
func JobHash(jd string) string {
	sum := sha256.Sum256([]byte(textutil.Normalize(jd)))
	return hex.EncodeToString(sum[:])
}
