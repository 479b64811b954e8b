// Package types provides type definitions for structured data used throughout the candidate-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// EducationLevel is the total order unknown < diploma < associate < bachelor < master < doctorate.
type EducationLevel int

// Education levels in ascending order
const (
	EducationUnknown EducationLevel = iota
	EducationDiploma
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

var educationLevelNames = []string{"unknown", "diploma", "associate", "bachelor", "master", "doctorate"}

// String returns the lowercase level name
func (l EducationLevel) String() string {
	if l < EducationUnknown || int(l) >= len(educationLevelNames) {
		return educationLevelNames[0]
	}
	return educationLevelNames[l]
}

// Ordinal returns the position of the level in the total order
func (l EducationLevel) Ordinal() int {
	if l < EducationUnknown || l > EducationDoctorate {
		return 0
	}
	return int(l)
}

// ParseEducationLevel parses a level name. Common synonyms such as "phd" are accepted.
func ParseEducationLevel(s string) (EducationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown", "none":
		return EducationUnknown, nil
	case "diploma", "certificate", "high school":
		return EducationDiploma, nil
	case "associate", "associates":
		return EducationAssociate, nil
	case "bachelor", "bachelors", "undergraduate":
		return EducationBachelor, nil
	case "master", "masters", "graduate":
		return EducationMaster, nil
	case "doctorate", "phd", "doctoral":
		return EducationDoctorate, nil
	default:
		return EducationUnknown, fmt.Errorf("unknown education level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l EducationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *EducationLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseEducationLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
