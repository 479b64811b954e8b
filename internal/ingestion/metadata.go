package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/candidate-screener/internal/screening"
)

// now is the ingestion clock
var now = time.Now

// Metadata describes where an ingested text came from
type Metadata struct {
	Source    string    `json:"source,omitempty"`
	URL       string    `json:"url,omitempty"`
	Platform  string    `json:"platform,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	// JobHash matches screening.JobHash of the text, so stored screenings can be
	// looked up from an ingested posting
	JobHash string   `json:"job_hash"`
	Chars   int      `json:"chars"`
	Links   []string `json:"links,omitempty"`
}

func newMetadata(text string) *Metadata {
	return &Metadata{
		FetchedAt: now().UTC(),
		JobHash:   screening.JobHash(text),
		Chars:     len(text),
	}
}

// ToJSON returns m as indented JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
