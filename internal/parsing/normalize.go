package parsing

import (
	"strings"
)

// skillDisplayNames maps canonical skill names to their conventional spelling
var skillDisplayNames = map[string]string{
	"go":               "Go",
	"javascript":       "JavaScript",
	"typescript":       "TypeScript",
	"nodejs":           "Node.js",
	"kubernetes":       "Kubernetes",
	"postgresql":       "PostgreSQL",
	"mysql":            "MySQL",
	"mongodb":          "MongoDB",
	"graphql":          "GraphQL",
	"fastapi":          "FastAPI",
	"aws":              "AWS",
	"gcp":              "GCP",
	"sql":              "SQL",
	"nosql":            "NoSQL",
	"html":             "HTML",
	"css":              "CSS",
	"php":              "PHP",
	"c++":              "C++",
	"c#":               "C#",
	"ci/cd":            "CI/CD",
	"rest":             "REST",
	"nlp":              "NLP",
	"devops":           "DevOps",
	"github":           "GitHub",
	"gitlab":           "GitLab",
	"pytorch":          "PyTorch",
	"tensorflow":       "TensorFlow",
	"numpy":            "NumPy",
	"scikit-learn":     "scikit-learn",
	"machine learning": "Machine Learning",
}

// DisplaySkillName returns the conventional spelling of a skill for human-facing
// output. Unknown single words are capitalized; multi-word and mixed-case names are
// returned as-is.
func DisplaySkillName(skill string) string {
	normalized := strings.TrimSpace(skill)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if display, ok := skillDisplayNames[lower]; ok {
		return display
	}

	// Mixed case means the caller already chose a spelling
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(lower[:1]) + lower[1:]
	}
	return normalized
}

// DisplaySkillNames applies DisplaySkillName to every skill
func DisplaySkillNames(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if d := DisplaySkillName(s); d != "" {
			out = append(out, d)
		}
	}
	return out
}
