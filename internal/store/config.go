package store

import (
	"encoding/json"
	"fmt"
)

const (
	preferencesKey = "preferences"

	// DefaultPageSize is used until the user picks a page size.
	DefaultPageSize = 10
	// MaxLeavePeriods bounds the leave periods on one claim.
	MaxLeavePeriods = 8
)

// PageSizes are the page sizes offered in settings.
var PageSizes = []int{5, 10, 25, 50}

// configEnvelope wraps a JSON-encoded config value so heterogeneous config
// types share a single zstore collection.
type configEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Preferences holds per-user display settings.
type Preferences struct {
	PageSize  int  `json:"page_size"`
	RevealSSN bool `json:"reveal_ssn"`
}

// withDefaults fills unset fields.
func (p Preferences) withDefaults() Preferences {
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Preferences returns the saved preferences, or defaults when none are saved.
func (s *Store) Preferences() Preferences {
	return loadConfig[Preferences](s, preferencesKey).withDefaults()
}

// SavePreferences persists p.
func (s *Store) SavePreferences(p Preferences) error {
	return saveConfig(s, preferencesKey, p.withDefaults())
}

// loadConfig reads a typed config from the envelope collection. Missing or
// undecodable configs yield the zero value.
func loadConfig[T any](s *Store, key string) T {
	var zero T
	if s == nil || s.configs == nil {
		return zero
	}

	env, err := s.configs.Get(key)
	if err != nil {
		return zero
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero
	}
	return v
}

// saveConfig persists a typed config into the envelope collection.
func saveConfig[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: marshal: %w", key, err)
	}

	if err := s.configs.Put(key, configEnvelope{Data: data}); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
