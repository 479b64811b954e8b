package education

import (
	"regexp"

	"github.com/jonathan/candidate-screener/internal/types"
)

// DegreeRule maps a degree pattern to a level. Patterns run against ASCII-lowercased
// text. When a pattern has a capture group, group 1 is the degree text and anything
// after it belongs to the field of study.
type DegreeRule struct {
	Level   types.EducationLevel
	Pattern *regexp.Regexp
}

const possessive = `(?:'s|’s|s)?`

// DefaultRules is the ordered rule list. Earlier rules win when spans overlap, so
// higher levels come first and full names precede abbreviations within a level.
var DefaultRules = []DegreeRule{
	{types.EducationDoctorate, regexp.MustCompile(`\b(doctor\s+of\s+(?:philosophy|education|science|engineering|medicine|business\s+administration))\b`)},
	{types.EducationDoctorate, regexp.MustCompile(`\b(ph\.?\s?d)\b`)},
	{types.EducationDoctorate, regexp.MustCompile(`\b(doctorate|doctoral\s+degree)\b`)},

	{types.EducationMaster, regexp.MustCompile(`\b(master` + possessive + `\s+of\s+(?:science|arts|engineering|business\s+administration|fine\s+arts|education|public\s+health|computer\s+science|information\s+technology))\b`)},
	{types.EducationMaster, regexp.MustCompile(`\b(master` + possessive + `(?:\s+degree)?)\s+(?:in|of)\s`)},
	{types.EducationMaster, regexp.MustCompile(`\b(master` + possessive + `\s+degree|graduate\s+degree)\b`)},
	{types.EducationMaster, regexp.MustCompile(`\b(m\.b\.a|mba|m\.sc|msc|m\.s|m\.a|m\.eng|meng|m\.tech|mtech)\b`)},
	{types.EducationMaster, regexp.MustCompile(`\b(ms|ma)\s+(?:in|of)\s`)},

	{types.EducationBachelor, regexp.MustCompile(`\b(bachelor` + possessive + `\s+of\s+(?:science|arts|engineering|business\s+administration|fine\s+arts|education|technology|computer\s+science|commerce))\b`)},
	{types.EducationBachelor, regexp.MustCompile(`\b(bachelor` + possessive + `(?:\s+degree)?)\s+(?:in|of)\s`)},
	{types.EducationBachelor, regexp.MustCompile(`\b(bachelor` + possessive + `\s+degree|undergraduate\s+degree)\b`)},
	{types.EducationBachelor, regexp.MustCompile(`\b(b\.b\.a|bba|b\.sc|bsc|b\.s|b\.a|b\.eng|beng|b\.tech|btech)\b`)},
	{types.EducationBachelor, regexp.MustCompile(`\b(bs|ba)\s+(?:in|of)\s`)},

	{types.EducationAssociate, regexp.MustCompile(`\b(associate` + possessive + `\s+(?:degree|of\s+(?:arts|science|applied\s+science)))\b`)},
	{types.EducationAssociate, regexp.MustCompile(`\b(associate(?:'s|’s))\s+in\s`)},

	{types.EducationDiploma, regexp.MustCompile(`\b((?:high\s+school\s+)?diploma|ged|hnd)\b`)},
}
