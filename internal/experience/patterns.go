package experience

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	month    = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	year     = `(?:19|20)\d{2}`
	dash     = `[ \t]*(?:-|–|—|to|until)[ \t]*`
	openEnd  = `(?:present|current|now|today|date)`
	numMonth = `(?:0?[1-9]|1[0-2])`
)

// durationPatterns are tried in order; the first that matches a line wins
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b` + month + `[ \t]+` + year + dash + `(?:(?:` + month + `[ \t]+)?` + year + `|` + openEnd + `)\b`),
	regexp.MustCompile(`(?i)\b` + numMonth + `/` + year + dash + `(?:` + numMonth + `/` + year + `|` + openEnd + `)\b`),
	regexp.MustCompile(`(?i)\b` + year + dash + `(?:` + year + `|` + openEnd + `)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:\.\d+)?\+?[ \t]*(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}[ \t]*months?\b`),
}

var (
	yearToken    = regexp.MustCompile(`\b` + year + `\b`)
	openEndToken = regexp.MustCompile(`(?i)\b` + openEnd + `\b`)
	yearsPhrase  = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\+?[ \t]*(?:years?|yrs?)\b`)

	separators  = regexp.MustCompile(`[ \t]*(?:\||[ \t][-–—][ \t]|,[ \t]|[ \t]at[ \t]|[ \t]@[ \t]|[()])[ \t]*`)
	bulletStart = regexp.MustCompile(`^(?:[•·✓*▪◦‣►]|[-–][ \t])[ \t]*`)
	ruleLine    = regexp.MustCompile(`^[-=_*~#.\s]+$`)
)

// findDuration returns the first duration in line and its span
func findDuration(line string) (string, []int) {
	for _, re := range durationPatterns {
		if loc := re.FindStringIndex(line); loc != nil {
			return strings.TrimSpace(line[loc[0]:loc[1]]), loc
		}
	}
	return "", nil
}

// rangeYears returns end-start for a duration expressing a year range. An open end
// counts as currentYear. ok is false for durations that are not ranges.
func rangeYears(duration string, currentYear int) (float64, bool) {
	years := yearToken.FindAllString(duration, -1)
	var start, end int
	switch {
	case len(years) >= 2:
		start, _ = strconv.Atoi(years[0])
		end, _ = strconv.Atoi(years[1])
	case len(years) == 1 && openEndToken.MatchString(duration):
		start, _ = strconv.Atoi(years[0])
		end = currentYear
	default:
		return 0, false
	}
	if end < start {
		return 0, true
	}
	return float64(end - start), true
}

// explicitYears returns the first "N years" phrase value in text
func explicitYears(text string) (float64, bool) {
	m := yearsPhrase.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
