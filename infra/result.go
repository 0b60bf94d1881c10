// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

// Technology classifies a provider's answer. The set is open ended:
// providers may surface values outside this list, but every InfraResult
// carries one of them unless the upstream response says otherwise.
type Technology string

const (
	TechFiber   Technology = "Fiber"
	TechVDSL    Technology = "VDSL"
	TechADSL    Technology = "ADSL"
	TechNone    Technology = "None"
	TechUnknown Technology = "Unknown"
	// TechRedirect marks a non-lookup answer: links to official portals.
	TechRedirect Technology = "Redirect"
	// TechError marks an operational failure turned into data.
	TechError Technology = "Error"
)

// InfraResult is one provider's normalized answer for an Address. Speed and
// port fields are optional; RawDetails keeps the unnormalized upstream
// response (or auxiliary data such as the link directory) for auditability.
type InfraResult struct {
	ProviderName    string         `json:"provider"`
	Technology      Technology     `json:"technology"`
	MaxDownloadMbps *float64       `json:"max_down_mbps,omitempty"`
	MaxUploadMbps   *float64       `json:"max_up_mbps,omitempty"`
	PortAvailable   *bool          `json:"port_available,omitempty"`
	RawDetails      map[string]any `json:"raw,omitempty"`
}

func mbps(v float64) *float64 { return &v }

func tristate(v bool) *bool { return &v }

// errorResult converts an operational failure into the result shape, so a
// broken upstream never aborts the aggregate query.
func errorResult(provider string, err error) InfraResult {
	return InfraResult{
		ProviderName: provider,
		Technology:   TechError,
		RawDetails:   map[string]any{"error": err.Error()},
	}
}
