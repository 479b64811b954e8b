package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
)

// explanation holds the inputs of a match explanation
type explanation struct {
	overall    float64
	scores     types.ComponentScores
	reqs       types.JobRequirements
	matched    []string
	missing    []string
	seniority  []string
	totalYears float64
	education  types.EducationLevel
}

// String renders the explanation as templated clauses joined with ". "
func (x explanation) String() string {
	clauses := []string{fmt.Sprintf("Overall match score: %d%%", textutil.Percent(x.overall))}
	clauses = append(clauses, x.skillClauses()...)
	clauses = append(clauses, x.experienceClauses()...)
	clauses = append(clauses, x.educationClause())
	clauses = append(clauses, fmt.Sprintf("Keyword overlap: %d%%", textutil.Percent(x.scores.KeywordOverlap)))
	return strings.Join(clauses, ". ")
}

func (x explanation) skillClauses() []string {
	required := len(x.reqs.RequiredSkills)
	switch {
	case required == 0:
		return []string{"No specific technical skills required"}
	case x.scores.SkillsMatch >= metThreshold:
		return []string{fmt.Sprintf("Meets all skill requirements (%s)", strings.Join(x.matched, ", "))}
	case len(x.matched) == 0:
		return []string{fmt.Sprintf("Missing required skills: %s", strings.Join(x.missing, ", "))}
	default:
		return []string{
			fmt.Sprintf("Matched skills: %s (%d of %d required)", strings.Join(x.matched, ", "), len(x.matched), required),
			fmt.Sprintf("Missing required skills: %s", strings.Join(x.missing, ", ")),
		}
	}
}

func (x explanation) experienceClauses() []string {
	var clauses []string
	switch {
	case x.reqs.Years == 0:
		clauses = append(clauses, fmt.Sprintf("No minimum experience specified (estimated %.1f years)", x.totalYears))
	case x.totalYears >= float64(x.reqs.Years):
		clauses = append(clauses, fmt.Sprintf("Meets experience requirement (%d+ years; estimated %.1f years)", x.reqs.Years, x.totalYears))
	default:
		clauses = append(clauses, fmt.Sprintf("Has %.1f years of experience (required: %d+)", x.totalYears, x.reqs.Years))
	}
	if len(x.seniority) > 0 {
		clauses = append(clauses, fmt.Sprintf("Seniority level matches (%s)", strings.Join(x.seniority, ", ")))
	}
	return clauses
}

func (x explanation) educationClause() string {
	required := x.reqs.EducationLevel
	switch {
	case !x.reqs.HasEducationRequirement():
		return "No education requirement specified"
	case x.education > required:
		return fmt.Sprintf("Education exceeds requirement (%s; required: %s)", x.education, required)
	case x.education == required:
		return fmt.Sprintf("Meets education requirement (%s)", required)
	case x.education == types.EducationUnknown:
		return fmt.Sprintf("Education level unclear (required: %s)", required)
	default:
		return fmt.Sprintf("Has %s education (required: %s)", x.education, required)
	}
}
