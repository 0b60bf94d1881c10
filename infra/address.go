// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"fmt"
	"strings"
)

// ValidationError reports a required address field that is missing or blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: bu alan zorunludur", e.Field)
}

// Address is the query key for every provider: a physical location as the
// user describes it. Province and district are mandatory, everything else is
// a refinement. CarrierAddressCode is the identifier some carriers (Türk
// Telekom's "TT Adres Kodu") require in lieu of free-text fields.
//
// Build values through NewAddress; the constructor trims every field and is
// the only place validation happens.
type Address struct {
	Province           string `json:"il"`
	District           string `json:"ilce"`
	Neighborhood       string `json:"mahalle,omitempty"`
	Street             string `json:"cadde_sokak,omitempty"`
	BuildingNo         string `json:"bina_no,omitempty"`
	Unit               string `json:"daire,omitempty"`
	CarrierAddressCode string `json:"tt_adres_kodu,omitempty"`
}

// NewAddress validates and normalizes raw address input. It fails with a
// *ValidationError when province or district is blank or whitespace-only.
func NewAddress(raw Address) (Address, error) {
	a := Address{
		Province:           strings.TrimSpace(raw.Province),
		District:           strings.TrimSpace(raw.District),
		Neighborhood:       strings.TrimSpace(raw.Neighborhood),
		Street:             strings.TrimSpace(raw.Street),
		BuildingNo:         strings.TrimSpace(raw.BuildingNo),
		Unit:               strings.TrimSpace(raw.Unit),
		CarrierAddressCode: strings.TrimSpace(raw.CarrierAddressCode),
	}

	if a.Province == "" {
		return Address{}, &ValidationError{Field: "il"}
	}

	if a.District == "" {
		return Address{}, &ValidationError{Field: "ilçe"}
	}

	return a, nil
}
