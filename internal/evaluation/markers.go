package evaluation

import "regexp"

// Phrase lists are matched as whole words against the lowercased answer.
var (
	addressingPhrases = []string{
		"specifically", "to answer your question", "first", "in my experience",
		"in short", "the main reason", "my approach", "because", "as a result",
	}

	exampleMarkers = []string{
		"for example", "for instance", "such as", "in my previous role", "at my last company",
		"we implemented", "i implemented", "i worked on", "i built", "we built", "the project involved",
		"one time", "a situation where", "to illustrate",
	}

	nuanceMarkers = []string{
		"however", "although", "on the other hand", "trade-off", "trade-offs", "tradeoff",
		"depends on", "alternatively", "pros and cons", "downside", "limitation", "risk",
		"in contrast", "whereas",
	}

	flowConnectives = []string{
		"first", "second", "third", "next", "then", "finally", "additionally", "furthermore",
		"moreover", "also", "however", "therefore", "thus", "consequently", "as a result",
		"because", "so", "in conclusion", "overall",
	}

	hedgingPhrases = []string{
		"kind of", "sort of", "maybe", "perhaps", "i guess", "i think", "probably", "possibly",
		"not sure", "i don't know", "um", "uh",
	}

	// questionWords are dropped from question keywords on top of the vocabulary stop words
	questionWords = []string{
		"what", "how", "why", "when", "where", "who", "which", "tell", "describe", "explain",
		"give", "me", "about", "your", "you", "did", "does", "would", "time",
	}
)

var (
	quantitativeRegex = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d+)?[kmb]?\b|\b\d+(?:[.,]\d+)*(?:\s*%|\s*(?:x|ms|seconds?|minutes?|hours?|days?|weeks?|months?|years?|users?|requests?|k|m|gb|tb)\b)?`)
	enumeratedLine    = regexp.MustCompile(`(?m)^[ \t]*(?:[-*•]|\d{1,2}[.)])[ \t]+\S`)
)

const (
	runOnTokens    = 35
	minAnswerWords = 20
	keywordMinLen  = 3
)
