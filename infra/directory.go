// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import "context"

// PortalLinks lists the official self-lookup portals: the known carriers
// plus the BTK EHABS service on e-Devlet. None of them offers an open API;
// EHABS additionally requires an e-Devlet session.
var PortalLinks = map[string]string{
	"Türk Telekom Altyapı Sorgu":  "https://www.turktelekom.com.tr/altyapi-sorgulama",
	"TT Kapsama Haritası":         "https://kapsamaharitasi.turktelekom.com.tr/",
	"Turkcell Superonline":        "https://www.superonline.net/altyapi-sorgulama",
	"Turkcell (Superbox/Altyapı)": "https://www.turkcell.com.tr/tr/altyapi-sorgulama",
	"Millenicom":                  "https://www.milleni.com.tr/internet-altyapi-sorgulama",
	"Netspeed":                    "https://www.netspeed.com.tr/altyapi-sorgula",
	"BTK – EHABS (e-Devlet)":      "https://www.turkiye.gov.tr/btk-elektronik-haberlesme-altyapi-bilgi-sistemi-ehabs-hizmetleri-4302",
}

// DirectoryProvider surfaces PortalLinks as a redirect-shaped result. It
// never fails and performs no I/O; the result is the same for every address.
type DirectoryProvider struct{}

// Name implements Provider.
func (DirectoryProvider) Name() string { return "Resmî Sayfalar – Yönlendirme" }

// Query implements Provider. RawDetails carries the full label→URL table.
func (DirectoryProvider) Query(_ context.Context, _ Address) []InfraResult {
	raw := make(map[string]any, len(PortalLinks))
	for label, url := range PortalLinks {
		raw[label] = url
	}

	return []InfraResult{{
		ProviderName: DirectoryProvider{}.Name(),
		Technology:   TechRedirect,
		RawDetails:   raw,
	}}
}
