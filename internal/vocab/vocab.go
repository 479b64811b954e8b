// Package vocab holds the reference vocabularies used by the extractors. A
// Vocabulary is immutable once built and is passed to each extractor at construction.
package vocab

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// File is the on-disk JSON representation of a vocabulary. Empty sections fall back to defaults.
type File struct {
	TechnicalSkills []string          `json:"technical_skills,omitempty"`
	SoftSkills      []string          `json:"soft_skills,omitempty"`
	SkillAliases    map[string]string `json:"skill_aliases,omitempty"`
	SeniorityLevels []string          `json:"seniority_levels,omitempty"`
	FieldsOfStudy   []string          `json:"fields_of_study,omitempty"`
	TitleKeywords   []string          `json:"title_keywords,omitempty"`
	CompanySuffixes []string          `json:"company_suffixes,omitempty"`
	NonCompanyWords []string          `json:"non_company_words,omitempty"`
	StopWords       []string          `json:"stop_words,omitempty"`
}

// Vocabulary is a normalized, read-only set of reference terms
type Vocabulary struct {
	technical       []string
	soft            []string
	aliases         map[string]string
	levels          []string
	fields          []string
	titleKeywords   []string
	companySuffixes []string
	nonCompany      map[string]bool
	stopWords       map[string]bool
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary. The same instance is shared by all callers.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := New(File{})
		if err != nil {
			panic(fmt.Sprintf("built-in vocabulary is invalid: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// New builds a Vocabulary from f, lowercasing and deduplicating every term.
// Sections left empty in f use the built-in defaults.
func New(f File) (*Vocabulary, error) {
	f = mergeWithDefaults(f)

	v := &Vocabulary{
		technical:       normalizeTerms(f.TechnicalSkills),
		soft:            normalizeTerms(f.SoftSkills),
		aliases:         make(map[string]string, len(f.SkillAliases)),
		levels:          normalizeTerms(f.SeniorityLevels),
		fields:          normalizeTerms(f.FieldsOfStudy),
		titleKeywords:   normalizeTerms(f.TitleKeywords),
		companySuffixes: normalizeTerms(f.CompanySuffixes),
		nonCompany:      toSet(normalizeTerms(f.NonCompanyWords)),
		stopWords:       toSet(normalizeTerms(f.StopWords)),
	}

	known := toSet(v.technical)
	for alias, canonical := range f.SkillAliases {
		alias = normalizeTerm(alias)
		canonical = normalizeTerm(canonical)
		if alias == "" || canonical == "" {
			continue
		}
		if !known[canonical] {
			return nil, fmt.Errorf("alias %q points to unknown technical skill %q", alias, canonical)
		}
		v.aliases[alias] = canonical
	}
	return v, nil
}

// mergeWithDefaults fills empty sections of f with the built-in defaults.
func mergeWithDefaults(f File) File {
	if len(f.TechnicalSkills) == 0 {
		f.TechnicalSkills = defaultTechnicalSkills
		if len(f.SkillAliases) == 0 {
			f.SkillAliases = defaultSkillAliases
		}
	}
	if len(f.SoftSkills) == 0 {
		f.SoftSkills = defaultSoftSkills
	}
	if len(f.SeniorityLevels) == 0 {
		f.SeniorityLevels = defaultSeniorityLevels
	}
	if len(f.FieldsOfStudy) == 0 {
		f.FieldsOfStudy = defaultFieldsOfStudy
	}
	if len(f.TitleKeywords) == 0 {
		f.TitleKeywords = defaultTitleKeywords
	}
	if len(f.CompanySuffixes) == 0 {
		f.CompanySuffixes = defaultCompanySuffixes
	}
	if len(f.NonCompanyWords) == 0 {
		f.NonCompanyWords = defaultNonCompanyWords
	}
	if len(f.StopWords) == 0 {
		f.StopWords = defaultStopWords
	}
	return f
}

// TechnicalSkills returns the technical skill terms in vocabulary order
func (v *Vocabulary) TechnicalSkills() []string { return clone(v.technical) }

// SoftSkills returns the soft skill terms in vocabulary order
func (v *Vocabulary) SoftSkills() []string { return clone(v.soft) }

// SeniorityLevels returns the seniority labels in vocabulary order
func (v *Vocabulary) SeniorityLevels() []string { return clone(v.levels) }

// FieldsOfStudy returns the field-of-study terms in vocabulary order
func (v *Vocabulary) FieldsOfStudy() []string { return clone(v.fields) }

// TitleKeywords returns words that mark a job title
func (v *Vocabulary) TitleKeywords() []string { return clone(v.titleKeywords) }

// CompanySuffixes returns legal or descriptive suffixes that mark a company name
func (v *Vocabulary) CompanySuffixes() []string { return clone(v.companySuffixes) }

// Aliases returns the alias to canonical skill mapping, sorted by alias for determinism
func (v *Vocabulary) Aliases() [][2]string {
	pairs := make([][2]string, 0, len(v.aliases))
	for alias, canonical := range v.aliases {
		pairs = append(pairs, [2]string{alias, canonical})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// Canonical maps a skill name to its canonical form
func (v *Vocabulary) Canonical(name string) string {
	name = normalizeTerm(name)
	if canonical, ok := v.aliases[name]; ok {
		return canonical
	}
	return name
}

// IsStopWord reports whether token is a stop word
func (v *Vocabulary) IsStopWord(token string) bool { return v.stopWords[token] }

// IsNonCompanyWord reports whether word can never be a company name on its own
func (v *Vocabulary) IsNonCompanyWord(word string) bool { return v.nonCompany[normalizeTerm(word)] }

// StopWordSet returns a copy of the stop word set
func (v *Vocabulary) StopWordSet() map[string]bool {
	out := make(map[string]bool, len(v.stopWords))
	for w := range v.stopWords {
		out[w] = true
	}
	return out
}

func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = normalizeTerm(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}

func clone(values []string) []string {
	return append([]string(nil), values...)
}
