// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import "sync"

// ProviderStats is a snapshot of one provider's counters.
type ProviderStats struct {
	Queries int64 `json:"queries"`
	Results int64 `json:"results"`
	Errors  int64 `json:"errors"`
}

// Stats accumulates per-provider counters across queries. Safe for
// concurrent use; the server shares one instance across requests.
type Stats struct {
	mu         sync.Mutex
	byProvider map[string]*ProviderStats
}

// NewStats creates an empty counter set.
func NewStats() *Stats {
	return &Stats{byProvider: make(map[string]*ProviderStats)}
}

// Record accounts one provider invocation and its outcome. An error-shaped
// result counts both as a result and as an error.
func (s *Stats) Record(provider string, results []InfraResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byProvider[provider]
	if !ok {
		st = &ProviderStats{}
		s.byProvider[provider] = st
	}

	st.Queries++
	st.Results += int64(len(results))

	for _, r := range results {
		if r.Technology == TechError {
			st.Errors++
		}
	}
}

// Snapshot returns a copy of the counters keyed by provider name.
func (s *Stats) Snapshot() map[string]ProviderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := make(map[string]ProviderStats, len(s.byProvider))
	for name, st := range s.byProvider {
		snap[name] = *st
	}

	return snap
}
