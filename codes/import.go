// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package codes

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a carrier address-code dataset: a JSON array of entries in
// the form {"il", "ilce", "mahalle", "cadde_sokak", "bina_no", "kod"}.
// Every entry must carry a province, a district and a code.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading code dataset: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing code dataset: %w", err)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Province) == "" ||
			strings.TrimSpace(e.District) == "" ||
			strings.TrimSpace(e.Code) == "" {
			return nil, fmt.Errorf("entry %d: il, ilce and kod are required", i)
		}
	}

	return entries, nil
}
