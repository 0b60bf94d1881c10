// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import "context"

// Credentials are the two Wiradius tokens. They come from process-wide
// configuration and may be shadowed per query by a caller-supplied pair.
type Credentials struct {
	APICode  string
	UniqCode string
}

// Complete reports whether both tokens are present.
func (c Credentials) Complete() bool {
	return c.APICode != "" && c.UniqCode != ""
}

// ResolveCredentials applies the override policy: a transient pair wins
// only when both of its fields are non-empty, otherwise the ambient
// configuration stays in effect.
func ResolveCredentials(ambient, override Credentials) Credentials {
	if override.Complete() {
		return override
	}

	return ambient
}

// ActiveProviders composes the standard provider list for a query: the mock
// always, Wiradius only when the credentials are complete, the portal
// directory last.
func ActiveProviders(creds Credentials, opts WiradiusOptions) []Provider {
	providers := []Provider{MockProvider{}}

	if creds.Complete() {
		providers = append(providers, NewWiradiusProvider(creds, opts))
	}

	return append(providers, DirectoryProvider{})
}

// Orchestrator invokes an ordered provider list and concatenates their
// results. Providers are isolated from one another: an empty or
// error-shaped answer never prevents the remaining providers from running.
type Orchestrator struct {
	providers []Provider
	stats     *Stats
}

// NewOrchestrator builds an orchestrator over the given providers. stats
// may be nil when nobody is watching.
func NewOrchestrator(stats *Stats, providers ...Provider) *Orchestrator {
	return &Orchestrator{providers: providers, stats: stats}
}

// Query runs every provider in list order, sequentially, and returns the
// aggregate. Result order matches provider order; within one provider the
// order is whatever that provider produced.
func (o *Orchestrator) Query(ctx context.Context, addr Address) []InfraResult {
	var results []InfraResult

	for _, p := range o.providers {
		res := p.Query(ctx, addr)
		if o.stats != nil {
			o.stats.Record(p.Name(), res)
		}

		results = append(results, res...)
	}

	return results
}
