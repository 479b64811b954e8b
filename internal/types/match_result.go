package types

// ComponentScores are the four weighted sub-scores of a resume match, each in [0,1]
type ComponentScores struct {
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	KeywordOverlap  float64 `json:"keyword_overlap"`
}

// ResumeData is the structured data extracted from a resume
type ResumeData struct {
	Skills     SkillProfile      `json:"skills"`
	Education  EducationProfile  `json:"education"`
	Experience ExperienceProfile `json:"experience"`
}

// MatchResult is the outcome of scoring a resume against a job description
type MatchResult struct {
	OverallScore        float64         `json:"overall_score"`
	OverallScorePercent int             `json:"overall_score_percent"`
	ComponentScores     ComponentScores `json:"component_scores"`
	Explanation         string          `json:"explanation"`
	MatchedSkills       []string        `json:"matched_skills"`
	MissingSkills       []string        `json:"missing_skills"`
	ResumeData          ResumeData      `json:"resume_data"`
	JobRequirements     JobRequirements `json:"job_requirements"`
}

// ToMap converts the result to a plain map
func (r *MatchResult) ToMap() (map[string]any, error) {
	return toMap(r)
}

// MatchResultFromMap builds a MatchResult from a plain map
func MatchResultFromMap(m map[string]any) (*MatchResult, error) {
	var r MatchResult
	if err := fromMap(m, &r); err != nil {
		return nil, err
	}
	r.MatchedSkills = nonNil(r.MatchedSkills)
	r.MissingSkills = nonNil(r.MissingSkills)
	return &r, nil
}
