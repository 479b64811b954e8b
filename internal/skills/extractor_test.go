package skills

import (
	"testing"

	"github.com/jonathan/candidate-screener/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seniorPythonJob = `
Senior Python Developer

We are looking for a Senior Python Developer with 5+ years of experience to join our growing team.

Requirements:
- 5+ years of Python development experience
- Strong experience with Django, Flask, or FastAPI
- Experience with AWS cloud services
- Knowledge of PostgreSQL and MongoDB
- Experience with Docker and Kubernetes
- Bachelor's degree in Computer Science or related field
- Experience with machine learning or data science is a plus

Responsibilities:
- Design and implement scalable backend services
- Lead technical initiatives and mentor junior developers
`

func TestExtract_EmptyText(t *testing.T) {
	profile := NewExtractor(nil).Extract("")
	assert.Empty(t, profile.Technical)
	assert.Empty(t, profile.Soft)
	assert.NotNil(t, profile.Technical)
	assert.Equal(t, 0, profile.TotalCount)
}

func TestExtract_JobDescriptionInFirstSeenOrder(t *testing.T) {
	profile := NewExtractor(nil).Extract(seniorPythonJob)

	assert.Equal(t, []string{
		"python", "django", "flask", "fastapi", "aws", "postgresql", "mongodb",
		"docker", "kubernetes", "machine learning", "data science", "backend",
	}, profile.Technical)
	assert.Empty(t, profile.Soft)
	assert.Equal(t, 12, profile.TotalCount)
}

func TestExtract_WordBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"java not inside javascript", "Built UIs in JavaScript and TypeScript", []string{"javascript", "typescript"}},
		{"both java and javascript", "Java backend, JavaScript frontend", []string{"java", "backend", "javascript", "frontend"}},
		{"sql not inside postgresql", "Tuned PostgreSQL indexes", []string{"postgresql"}},
		{"symbols", "Wrote C++ and C# tools", []string{"c++", "c#"}},
		{"versioned skills", "Migrated Python3.11 and Java17 services", []string{"python", "java"}},
		{"version with space", "Upgraded to Django 4.2", []string{"django"}},
		{"aliases", "Golang services on k8s with Node.js", []string{"go", "kubernetes", "nodejs"}},
		{"alias and canonical collapse", "Postgres and PostgreSQL", []string{"postgresql"}},
		{"duplicates collapse", "Python, python and PYTHON", []string{"python"}},
		{"multi word phrases", "Deep learning and machine learning research", []string{"deep learning", "machine learning"}},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Technical)
		})
	}
}

func TestExtract_AmbiguousShortSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"prose go is not a skill", "She is the go-to person who can go far", []string{}},
		{"capitalized go-to is not a skill", "Go-to person for on-call", []string{}},
		{"capitalized go is a skill", "Built services in Go and Python", []string{"go", "python"}},
		{"go after prose go", "Ready to go. Wrote Go daily", []string{"go"}},
		{"versioned go", "Upgraded to go1.22", []string{"go"}},
		{"r and d is not r", "Led R&D for the lab", []string{}},
		{"lowercase r is not a skill", "Press r to retry", []string{}},
		{"capitalized r", "Statistics in R and SQL", []string{"statistics", "r", "sql"}},
		{"golang alias is not restricted", "golang microservices", []string{"go", "microservices"}},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Technical)
		})
	}
}

func TestExtract_SoftSkills(t *testing.T) {
	profile := NewExtractor(nil).Extract("Known for leadership,\ncommunication and problem   solving.")
	assert.Equal(t, []string{"leadership", "communication", "problem solving"}, profile.Soft)
	assert.Equal(t, len(profile.Technical)+len(profile.Soft), profile.TotalCount)
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor(nil)
	assert.Equal(t, e.Extract(seniorPythonJob), e.Extract(seniorPythonJob))
}

func TestExtract_CustomVocabulary(t *testing.T) {
	v, err := vocab.New(vocab.File{
		TechnicalSkills: []string{"cobol", "fortran"},
		SoftSkills:      []string{"patience"},
	})
	require.NoError(t, err)

	profile := NewExtractor(v).Extract("Fortran and COBOL with patience. Also Python.")
	assert.Equal(t, []string{"fortran", "cobol"}, profile.Technical)
	assert.Equal(t, []string{"patience"}, profile.Soft)
}

func TestExtractTechnical_ExcludesSoft(t *testing.T) {
	got := NewExtractor(nil).ExtractTechnical("Leadership with Docker")
	assert.Equal(t, []string{"docker"}, got)
}
