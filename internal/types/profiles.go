package types

// SkillProfile holds the skills recognized in a text, lowercased and in first-seen order
type SkillProfile struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	TotalCount int      `json:"total_count"`
}

// NewSkillProfile builds a SkillProfile and derives TotalCount
func NewSkillProfile(technical, soft []string) SkillProfile {
	technical, soft = nonNil(technical), nonNil(soft)
	return SkillProfile{
		Technical:  technical,
		Soft:       soft,
		TotalCount: len(technical) + len(soft),
	}
}

// All returns technical skills followed by soft skills
func (p SkillProfile) All() []string {
	all := make([]string, 0, len(p.Technical)+len(p.Soft))
	all = append(all, p.Technical...)
	return append(all, p.Soft...)
}

// ToMap converts the profile to a plain map
func (p SkillProfile) ToMap() (map[string]any, error) {
	return toMap(p)
}

// SkillProfileFromMap builds a SkillProfile from a plain map
func SkillProfileFromMap(m map[string]any) (SkillProfile, error) {
	var p SkillProfile
	if err := fromMap(m, &p); err != nil {
		return SkillProfile{}, err
	}
	return NewSkillProfile(p.Technical, p.Soft), nil
}

// EducationEntry is a single recognized degree
type EducationEntry struct {
	Degree      string         `json:"degree"`
	Field       string         `json:"field"`
	Institution string         `json:"institution"`
	Year        string         `json:"year"`
	Level       EducationLevel `json:"level"`
}

// EducationProfile summarizes the education found in a text
type EducationProfile struct {
	Degrees      []string         `json:"degrees"`
	Fields       []string         `json:"fields"`
	Institutions []string         `json:"institutions"`
	Years        []string         `json:"years"`
	Entries      []EducationEntry `json:"entries"`
	Level        EducationLevel   `json:"level"`
}

// NewEducationProfile derives the flat lists and the maximum level from entries
func NewEducationProfile(entries []EducationEntry) EducationProfile {
	p := EducationProfile{
		Degrees:      []string{},
		Fields:       []string{},
		Institutions: []string{},
		Years:        []string{},
		Entries:      []EducationEntry{},
		Level:        EducationUnknown,
	}
	seen := map[string]bool{}
	add := func(list *[]string, kind, value string) {
		if value == "" || seen[kind+value] {
			return
		}
		seen[kind+value] = true
		*list = append(*list, value)
	}
	for _, e := range entries {
		p.Entries = append(p.Entries, e)
		add(&p.Degrees, "d", e.Degree)
		add(&p.Fields, "f", e.Field)
		add(&p.Institutions, "i", e.Institution)
		add(&p.Years, "y", e.Year)
		if e.Level > p.Level {
			p.Level = e.Level
		}
	}
	return p
}

// ToMap converts the profile to a plain map
func (p EducationProfile) ToMap() (map[string]any, error) {
	return toMap(p)
}

// EducationProfileFromMap builds an EducationProfile from a plain map.
// The flat lists and level are re-derived from entries.
func EducationProfileFromMap(m map[string]any) (EducationProfile, error) {
	var p EducationProfile
	if err := fromMap(m, &p); err != nil {
		return EducationProfile{}, err
	}
	if len(p.Entries) == 0 {
		p.Degrees, p.Fields = nonNil(p.Degrees), nonNil(p.Fields)
		p.Institutions, p.Years = nonNil(p.Institutions), nonNil(p.Years)
		p.Entries = []EducationEntry{}
		return p, nil
	}
	return NewEducationProfile(p.Entries), nil
}

// ExperienceEntry is a recognized job line
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// ExperienceProfile summarizes the work history found in a text
type ExperienceProfile struct {
	JobTitles           []string          `json:"job_titles"`
	Companies           []string          `json:"companies"`
	Durations           []string          `json:"durations"`
	Achievements        []string          `json:"achievements"`
	TotalYearsEstimated float64           `json:"total_years_estimated"`
	Entries             []ExperienceEntry `json:"entries"`
}

// EmptyExperienceProfile returns a profile with empty, non-nil lists
func EmptyExperienceProfile() ExperienceProfile {
	return ExperienceProfile{
		JobTitles:    []string{},
		Companies:    []string{},
		Durations:    []string{},
		Achievements: []string{},
		Entries:      []ExperienceEntry{},
	}
}

// ToMap converts the profile to a plain map
func (p ExperienceProfile) ToMap() (map[string]any, error) {
	return toMap(p)
}

// ExperienceProfileFromMap builds an ExperienceProfile from a plain map
func ExperienceProfileFromMap(m map[string]any) (ExperienceProfile, error) {
	p := EmptyExperienceProfile()
	if err := fromMap(m, &p); err != nil {
		return ExperienceProfile{}, err
	}
	p.JobTitles, p.Companies = nonNil(p.JobTitles), nonNil(p.Companies)
	p.Durations, p.Achievements = nonNil(p.Durations), nonNil(p.Achievements)
	if p.Entries == nil {
		p.Entries = []ExperienceEntry{}
	}
	return p, nil
}
