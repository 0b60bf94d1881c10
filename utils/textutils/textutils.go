// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

// Package textutils normalizes Turkish place names for comparison.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotless ı is a standalone letter, not a combining mark, so accent
// removal alone never reaches it.
var turkishFold = runes.Map(func(r rune) rune {
	if r == 'ı' {
		return 'i'
	}

	return r
})

// Fold normalizes a string by lowercasing, removing accents
// (ş→s, ğ→g, ç→c, ö→o, ü→u, the dot of a lowered İ), mapping the
// dotless ı to i, and trimming spaces. Folding "Bartın", "BARTIN" and
// "bartin" all yield "bartin".
func Fold(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			turkishFold,
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}
