package models

import "time"

// Snapshot is the plain, versionless diagram handed to persistence.
type Snapshot struct {
	Players    []Player          `json:"players"`
	Routes     []Route           `json:"routes"`
	Formation  string            `json:"formation"`
	ODK        string            `json:"odk"`
	PlayType   string            `json:"playType,omitempty"`
	Coverage   string            `json:"coverage,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Clone deep-copies the snapshot so the copy can outlive further edits.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	out.Routes = make([]Route, len(s.Routes))
	for i, r := range s.Routes {
		out.Routes[i] = r.Clone()
	}
	if s.Attributes != nil {
		out.Attributes = make(map[string]string, len(s.Attributes))
		for k, v := range s.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}

type Draft struct {
	Key      string
	Snapshot Snapshot
	SavedAt  time.Time
}

type PlayRecord struct {
	ID        string
	Code      string
	Name      string
	ODK       string
	Formation string
	PlayType  string
	Snapshot  Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Merge concatenates the messages of other onto r.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	out := ValidationResult{
		Errors:   append(append([]string{}, r.Errors...), other.Errors...),
		Warnings: append(append([]string{}, r.Warnings...), other.Warnings...),
	}
	out.IsValid = len(out.Errors) == 0
	return out
}
