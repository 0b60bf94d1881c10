// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already folded", in: "rize", want: "rize"},
		{name: "title case", in: "Rize", want: "rize"},
		{name: "upper ascii", in: "TRABZON", want: "trabzon"},
		{name: "dotted capital i", in: "RİZE", want: "rize"},
		{name: "dotless i", in: "Bartın", want: "bartin"},
		{name: "upper dotless word", in: "KASTAMONU", want: "kastamonu"},
		{name: "s cedilla", in: "Şanlıurfa", want: "sanliurfa"},
		{name: "g breve and u umlaut", in: "Iğdır Üniversitesi", want: "igdir universitesi"},
		{name: "c cedilla", in: "Çankaya", want: "cankaya"},
		{name: "o umlaut", in: "Göztepe", want: "goztepe"},
		{name: "surrounding spaces", in: "  Ordu  ", want: "ordu"},
		{name: "empty", in: "", want: ""},
		{name: "only spaces", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
