package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/server"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	jobText = `Senior Python Developer

We need 5+ years of experience building web services.
Required: Python, Django, PostgreSQL and Docker.
Bachelor's degree in Computer Science preferred.`

	strongResume = `Jane Doe
Senior Software Engineer at Acme Corp (2016 - 2023)
- Built Django services in Python backed by PostgreSQL, deployed with Docker
- Reduced latency by 40%
B.S. in Computer Science, State University, 2015`

	weakResume = `John Smith
Barista at Corner Cafe (2021 - 2023)
- Served customers and handled the register`
)

// execute runs the CLI in process and returns what it wrote to stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractSkills_Stdin(t *testing.T) {
	out, err := execute(t, strongResume, "extract", "skills")
	require.NoError(t, err)

	var profile types.SkillProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Contains(t, profile.Technical, "python")
	assert.Contains(t, profile.Technical, "django")
	assert.Equal(t, len(profile.Technical)+len(profile.Soft), profile.TotalCount)
}

func TestExtractRequirements_Box(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)

	out, err := execute(t, "", "extract", "requirements", "--file", job, "--output", "box")
	require.NoError(t, err)
	assert.Contains(t, out, "JOB REQUIREMENTS")
	assert.Contains(t, out, "Years:      5")
	assert.Contains(t, out, "• python")
}

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)
	resume := writeFile(t, dir, "jane.txt", strongResume)

	out, err := execute(t, "", "match", "--job", job, "--resume", resume, "--name", "Jane Doe")
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, screening.JobHash(jobText), got.JobHash)
	require.NotNil(t, got.Result)
	assert.Greater(t, got.Result.OverallScorePercent, 50)
	assert.Contains(t, got.Result.MatchedSkills, "django")
	assert.Empty(t, got.ScreeningID)
	assert.Nil(t, got.Summary)
}

func TestMatch_SummaryWithFakeLLM(t *testing.T) {
	t.Setenv("SCREENER_LLM_PROVIDER", "fake")
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)
	resume := writeFile(t, dir, "jane.txt", strongResume)

	out, err := execute(t, "", "match", "--job", job, "--resume", resume, "--summary")
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Summary)
	assert.Equal(t, "review", got.Summary.Recommendation)
}

func TestMatch_JobURL(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>Careers</nav><div class="job-description"><p>` +
			strings.ReplaceAll(jobText, "\n", "</p><p>") + `</p></div></body></html>`))
	}))
	defer posting.Close()

	dir := t.TempDir()
	resume := writeFile(t, dir, "jane.txt", strongResume)

	out, err := execute(t, "", "match", "--job-url", posting.URL, "--resume", resume)
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Result.JobRequirements.Years)
	assert.Contains(t, got.Result.JobRequirements.RequiredSkills, "docker")
}

func TestMatch_SaveWithoutDatabase(t *testing.T) {
	t.Setenv("SCREENER_DATABASE_URL", "")
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)
	resume := writeFile(t, dir, "jane.txt", strongResume)

	_, err := execute(t, "", "match", "--job", job, "--resume", resume, "--save")
	assert.True(t, errors.Is(err, errNoDatabase))
}

func TestRank(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)
	weak := writeFile(t, dir, "john.txt", weakResume)
	strong := writeFile(t, dir, "jane.txt", strongResume)

	out, err := execute(t, "", "rank", "--job", job, weak, strong)
	require.NoError(t, err)

	var ranked []ranking.CandidateScore
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "jane", ranked[0].CandidateID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "john", ranked[1].CandidateID)

	out, err = execute(t, "", "rank", "--job", job, "--top", "1", "-o", "box", weak, strong)
	require.NoError(t, err)
	assert.Contains(t, out, "#1  jane")
	assert.NotContains(t, out, "john")
}

func TestEvaluate(t *testing.T) {
	out, err := execute(t, "", "evaluate",
		"--question", "Tell me about a time you resolved a conflict on your team.",
		"--answer", "First, I listened to both engineers. Then we agreed on a design review, and the release shipped on time.",
		"--type", "behavioral")
	require.NoError(t, err)

	var ev types.AnswerEvaluation
	require.NoError(t, json.Unmarshal([]byte(out), &ev))
	assert.Equal(t, types.QuestionBehavioral, ev.QuestionType)
	assert.GreaterOrEqual(t, ev.OverallScore, 0.0)
	assert.LessOrEqual(t, ev.OverallScore, 1.0)
}

func TestReport_Markdown(t *testing.T) {
	answer := writeFile(t, t.TempDir(), "answer.txt", "I use Python daily to build Django APIs, for example a billing service.")

	out, err := execute(t, "", "report", "-q", "How do you use Python?", "--answer-file", answer, "--format", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Interview Answer Evaluation Report"))
}

func TestBatch_DictFromStdin(t *testing.T) {
	input := `{"candidate_name": "Jane Doe", "items": [
		{"question": "Why this role?", "answer": "I enjoy building reliable systems for users."},
		{"question": "How do you test code?", "answer": "I write unit tests first, then integration tests.", "question_type": "technical"}
	]}`

	out, err := execute(t, input, "batch", "--format", "dict")
	require.NoError(t, err)

	var dict map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &dict))
	assert.EqualValues(t, 2, dict["total_questions"])
	assert.Len(t, dict["evaluations"], 2)
}

func TestInterview(t *testing.T) {
	job := writeFile(t, t.TempDir(), "job.txt", jobText)
	answers := strings.Join([]string{
		"I am a backend engineer with 6 years of Python experience.",
		"",
		"First, I reproduced the outage. Then we added retries, and errors dropped by 30%.",
		"I want to grow with a team that ships reliable software.",
	}, "\n")

	out, err := execute(t, answers, "interview", "--job", job, "--name", "Jane Doe", "--max-questions", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Q1/3 [general]: Briefly introduce yourself")
	assert.Contains(t, out, "Q3/3 [general]:")
	assert.Contains(t, out, "BATCH INTERVIEW EVALUATION REPORT")
	assert.Contains(t, out, "Candidate: Jane Doe")
	assert.Contains(t, out, "Total Questions Evaluated: 3")
}

func TestInterview_InputEndsEarly(t *testing.T) {
	job := writeFile(t, t.TempDir(), "job.txt", jobText)

	out, err := execute(t, "My only answer about Python.\n", "interview", "--job", job, "--max-questions", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Q2/3")
	assert.NotContains(t, out, "Q3/3")
	assert.Contains(t, out, "Total Questions Evaluated: 1")
}

func TestToken(t *testing.T) {
	secret := "a-test-secret-that-is-long-enough"
	t.Setenv("SCREENER_AUTH_JWT_SECRET", secret)

	out, err := execute(t, "", "token", "--client-id", "ci-bot")
	require.NoError(t, err)

	svc := server.NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 24})
	claims, err := svc.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ci-bot", claims.ClientID)
}

func TestCommandErrors(t *testing.T) {
	t.Setenv("SCREENER_AUTH_JWT_SECRET", "")
	t.Setenv("SCREENER_DATABASE_URL", "")
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", jobText)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid output", []string{"extract", "skills", "-o", "xml"}, "invalid --output"},
		{"missing file", []string{"extract", "skills", "-f", filepath.Join(dir, "missing.txt")}, "file not found"},
		{"missing resume", []string{"match", "--job", job}, "resume"},
		{"missing job", []string{"match", "--resume", job}, "job"},
		{"job and job-url", []string{"match", "--job", job, "--job-url", "http://example.com", "--resume", job}, "none of the others"},
		{"bad question type", []string{"evaluate", "-q", "Why?", "-a", "Because.", "-t", "trivia"}, "question_type"},
		{"bad report format", []string{"report", "-q", "Why?", "-a", "Because.", "-F", "pdf"}, "format"},
		{"rank without resumes", []string{"rank", "--job", job}, "requires at least 1 arg"},
		{"token without secret", []string{"token"}, "jwt-secret"},
		{"migrate without database", []string{"migrate"}, "database.url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCandidateID(t *testing.T) {
	assert.Equal(t, "jane", candidateID("/tmp/resumes/jane.txt"))
	assert.Equal(t, "john.doe", candidateID("john.doe.md"))
	assert.Equal(t, "noext", candidateID("noext"))
}
