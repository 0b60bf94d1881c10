// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

// Package infra queries broadband availability (fiber/VDSL/ADSL) for an
// address by dispatching to pluggable provider backends and aggregating
// their normalized results.
package infra

import "context"

// Provider is the uniform lookup capability over an Address. New backends
// are added by implementing this interface.
//
// Query never fails for operational reasons: upstream trouble (network
// errors, bad status, malformed responses) comes back as a single result
// with Technology = TechError, and an inapplicable provider (for example one
// missing its credentials) returns an empty slice. Context reaches the
// network boundary; providers without I/O ignore it.
type Provider interface {
	Name() string
	Query(ctx context.Context, addr Address) []InfraResult
}
