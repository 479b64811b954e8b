package education

import (
	"regexp"
	"testing"

	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyText(t *testing.T) {
	profile := NewExtractor(nil).Extract("   \n ")
	assert.Equal(t, types.EducationUnknown, profile.Level)
	assert.NotNil(t, profile.Degrees)
	assert.Empty(t, profile.Degrees)
	assert.Empty(t, profile.Entries)
}

func TestExtract_DegreeWithInstitutionOnNextLine(t *testing.T) {
	profile := NewExtractor(nil).Extract("EDUCATION\nBachelor of Science in Computer Science\nState University, 2018")

	require.Len(t, profile.Entries, 1)
	assert.Equal(t, types.EducationEntry{
		Degree:      "Bachelor of Science in Computer Science",
		Field:       "Computer Science",
		Institution: "State University",
		Year:        "2018",
		Level:       types.EducationBachelor,
	}, profile.Entries[0])
	assert.Equal(t, types.EducationBachelor, profile.Level)
}

func TestExtract_MultipleDegrees(t *testing.T) {
	text := `Ph.D. in Machine Learning, Stanford University, 2020
M.S. in Computer Science, Massachusetts Institute of Technology, 2016
B.S. in Mathematics from University of Michigan (2012 - 2014)`

	profile := NewExtractor(nil).Extract(text)

	assert.Equal(t, types.EducationDoctorate, profile.Level)
	assert.Equal(t, []string{
		"Ph.D. in Machine Learning",
		"M.S. in Computer Science",
		"B.S. in Mathematics",
	}, profile.Degrees)
	assert.Equal(t, []string{
		"Stanford University",
		"Massachusetts Institute of Technology",
		"University of Michigan",
	}, profile.Institutions)
	assert.Equal(t, []string{"2020", "2016", "2014"}, profile.Years)
	assert.Equal(t, []string{"Machine Learning", "Computer Science", "Mathematics"}, profile.Fields)
}

func TestExtract_AbbreviationRestatingDegreeIsDropped(t *testing.T) {
	profile := NewExtractor(nil).Extract("Master of Business Administration (MBA), Wharton School, 2019")

	require.Len(t, profile.Entries, 1)
	assert.Equal(t, "Master of Business Administration", profile.Entries[0].Degree)
	assert.Equal(t, "Wharton School", profile.Entries[0].Institution)
	assert.Equal(t, "2019", profile.Entries[0].Year)
	assert.Equal(t, types.EducationMaster, profile.Level)
}

func TestExtract_BareAbbreviationIsValidEntry(t *testing.T) {
	profile := NewExtractor(nil).Extract("PhD")

	require.Len(t, profile.Entries, 1)
	assert.Equal(t, types.EducationEntry{Degree: "PhD", Level: types.EducationDoctorate}, profile.Entries[0])
	assert.Empty(t, profile.Institutions)
}

func TestExtract_FieldAfterAbbreviationWithoutPreposition(t *testing.T) {
	profile := NewExtractor(nil).Extract("B.S. Computer Science, 2015")

	require.Len(t, profile.Entries, 1)
	assert.Equal(t, "B.S. in Computer Science", profile.Entries[0].Degree)
	assert.Equal(t, "Computer Science", profile.Entries[0].Field)
	assert.Equal(t, "2015", profile.Entries[0].Year)
}

func TestExtract_InstitutionAfterAt(t *testing.T) {
	profile := NewExtractor(nil).Extract("Completed a doctorate at Carnegie Mellon in 2021")

	require.Len(t, profile.Entries, 1)
	assert.Equal(t, "Carnegie Mellon", profile.Entries[0].Institution)
	assert.Equal(t, "2021", profile.Entries[0].Year)
}

func TestExtract_DuplicateDegreesCollapse(t *testing.T) {
	profile := NewExtractor(nil).Extract("B.S. in Physics, 2010\nb.s. in physics, 2010")
	assert.Len(t, profile.Entries, 1)
}

func TestExtract_LowerLevels(t *testing.T) {
	profile := NewExtractor(nil).Extract("Associate of Applied Science\nHigh School Diploma, 2008")

	require.Len(t, profile.Entries, 2)
	assert.Equal(t, types.EducationAssociate, profile.Entries[0].Level)
	assert.Equal(t, types.EducationDiploma, profile.Entries[1].Level)
	assert.Equal(t, "2008", profile.Entries[1].Year)
	assert.Empty(t, profile.Entries[0].Institution)
	assert.Equal(t, types.EducationAssociate, profile.Level)
}

func TestExtract_RulePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  types.EducationLevel
		count int
	}{
		{"full master name wins over partial", "Master of Science in Data Science", types.EducationMaster, 1},
		{"scrum master is not a degree", "Certified Scrum Master, 2019", types.EducationUnknown, 0},
		{"bare bs needs a field", "BS detector on call", types.EducationUnknown, 0},
		{"bs with field", "BS in Economics", types.EducationBachelor, 1},
		{"dotted mba inside text", "Holds an M.B.A. and a B.A. in History", types.EducationMaster, 2},
		{"undergraduate is not graduate", "Undergraduate degree required", types.EducationBachelor, 1},
		{"managed is not ged", "Managed a team", types.EducationUnknown, 0},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := e.Extract(tt.text)
			assert.Equal(t, tt.want, profile.Level)
			assert.Len(t, profile.Entries, tt.count)
		})
	}
}

func TestLevel(t *testing.T) {
	e := NewExtractor(nil)
	assert.Equal(t, types.EducationMaster, e.Level("MBA and B.A. in Economics"))
	assert.Equal(t, types.EducationUnknown, e.Level("no formal education listed"))
}

func TestFindDegrees_FieldStopsAtConnector(t *testing.T) {
	matches := NewExtractor(nil).FindDegrees("Bachelor's degree in Computer Science or related field")

	require.Len(t, matches, 1)
	assert.Equal(t, "Bachelor's degree", matches[0].Degree)
	assert.Equal(t, "Computer Science", matches[0].Field)
	assert.Equal(t, types.EducationBachelor, matches[0].Level)
}

func TestNewExtractorWithRules_CustomOrder(t *testing.T) {
	rules := []DegreeRule{
		{Level: types.EducationDiploma, Pattern: regexp.MustCompile(`\b(bootcamp\s+certificate)\b`)},
	}
	e := NewExtractorWithRules(nil, rules)

	assert.Equal(t, types.EducationDiploma, e.Level("Bootcamp Certificate in Web Development"))
	assert.Equal(t, types.EducationUnknown, e.Level("Bachelor of Arts"))
}

func TestExtract_InstitutionAfterComma(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		institution string
		year        string
	}{
		{"abbreviation with field", "BS in Computer Science, Georgia Tech, 2015", "Georgia Tech", "2015"},
		{"full degree name", "Master of Science, Carnegie Mellon, 2019", "Carnegie Mellon", "2019"},
		{"field term is skipped", "M.S., Computer Science, Caltech, 2011", "Caltech", "2011"},
		{"gpa is not a school", "B.A. in History, GPA 3.8", "", ""},
		{"month is not a school", "B.A. in History, May 2012", "", "2012"},
		{"from still works", "Bachelor of Arts from Oberlin 2010", "Oberlin", "2010"},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := e.Extract(tt.text)
			require.Len(t, profile.Entries, 1)
			assert.Equal(t, tt.institution, profile.Entries[0].Institution)
			assert.Equal(t, tt.year, profile.Entries[0].Year)
		})
	}
}
