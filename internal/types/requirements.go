package types

// JobRequirements is what a job description asks of a candidate. Years of 0 means unspecified.
type JobRequirements struct {
	Years           int            `json:"years"`
	Levels          []string       `json:"levels"`
	EducationLevel  EducationLevel `json:"education_level"`
	EducationFields []string       `json:"education_fields"`
	RequiredSkills  []string       `json:"required_skills"`
}

// HasEducationRequirement reports whether an education level is required
func (r JobRequirements) HasEducationRequirement() bool {
	return r.EducationLevel > EducationUnknown
}

// ToMap converts the requirements to a plain map
func (r JobRequirements) ToMap() (map[string]any, error) {
	return toMap(r)
}

// JobRequirementsFromMap builds JobRequirements from a plain map
func JobRequirementsFromMap(m map[string]any) (JobRequirements, error) {
	var r JobRequirements
	if err := fromMap(m, &r); err != nil {
		return JobRequirements{}, err
	}
	if r.Years < 0 {
		r.Years = 0
	}
	r.Levels = nonNil(r.Levels)
	r.EducationFields = nonNil(r.EducationFields)
	r.RequiredSkills = nonNil(r.RequiredSkills)
	return r, nil
}
