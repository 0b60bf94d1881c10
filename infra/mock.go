// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"context"

	"github.com/altyapi/altyapi/utils/textutils"
)

// coastalProvinces are the Black Sea provinces the demo rule treats as
// fiber-covered. Keys are folded (see textutils.Fold).
var coastalProvinces = map[string]struct{}{
	"rize":      {},
	"artvin":    {},
	"trabzon":   {},
	"giresun":   {},
	"ordu":      {},
	"samsun":    {},
	"bartin":    {},
	"kastamonu": {},
	"sinop":     {},
	"zonguldak": {},
}

// MockProvider is a deterministic rule-based stand-in for a real backend,
// used for demonstration and as a testing fixture. It is pure: no I/O, no
// failure modes, always exactly one result.
type MockProvider struct{}

// Name implements Provider.
func (MockProvider) Name() string { return "Demo (Mock)" }

// Query classifies the address by province: Black Sea coast gets fiber,
// everything else VDSL. RawDetails records which rule fired.
func (MockProvider) Query(_ context.Context, addr Address) []InfraResult {
	res := InfraResult{
		ProviderName:  MockProvider{}.Name(),
		PortAvailable: tristate(true),
	}

	if _, ok := coastalProvinces[textutils.Fold(addr.Province)]; ok {
		res.Technology = TechFiber
		res.MaxDownloadMbps = mbps(1000)
		res.MaxUploadMbps = mbps(100)
		res.RawDetails = map[string]any{"rule": "karadeniz-fiber"}
	} else {
		res.Technology = TechVDSL
		res.MaxDownloadMbps = mbps(100)
		res.MaxUploadMbps = mbps(8)
		res.RawDetails = map[string]any{"rule": "varsayilan-vdsl"}
	}

	return []InfraResult{res}
}
