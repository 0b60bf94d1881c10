// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"errors"
	"testing"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		raw     Address
		wantErr bool
	}{
		{
			name: "minimal valid address",
			raw:  Address{Province: "Rize", District: "Merkez"},
		},
		{
			name: "full address",
			raw: Address{
				Province:           "Ankara",
				District:           "Çankaya",
				Neighborhood:       "Kızılay",
				Street:             "Atatürk Bulvarı",
				BuildingNo:         "12",
				Unit:               "4",
				CarrierAddressCode: "1234567",
			},
		},
		{
			name: "padded required fields survive",
			raw:  Address{Province: "  Trabzon ", District: " Ortahisar  "},
		},
		{
			name:    "missing province",
			raw:     Address{District: "Merkez"},
			wantErr: true,
		},
		{
			name:    "missing district",
			raw:     Address{Province: "Rize"},
			wantErr: true,
		},
		{
			name:    "whitespace-only province",
			raw:     Address{Province: "   ", District: "Merkez"},
			wantErr: true,
		},
		{
			name:    "whitespace-only district",
			raw:     Address{Province: "Rize", District: "\t "},
			wantErr: true,
		},
		{
			name:    "both blank",
			raw:     Address{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := NewAddress(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAddress() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error %v is not a *ValidationError", err)
				}

				return
			}

			if addr.Province == "" || addr.District == "" {
				t.Errorf("required fields empty after construction: %+v", addr)
			}
		})
	}
}

func TestNewAddressTrimsAllFields(t *testing.T) {
	addr, err := NewAddress(Address{
		Province:           " Rize ",
		District:           " Merkez ",
		Neighborhood:       " Cumhuriyet ",
		Street:             " Sahil Cd. ",
		BuildingNo:         " 5 ",
		Unit:               " 2 ",
		CarrierAddressCode: " 987 ",
	})
	if err != nil {
		t.Fatalf("NewAddress() error = %v", err)
	}

	want := Address{
		Province:           "Rize",
		District:           "Merkez",
		Neighborhood:       "Cumhuriyet",
		Street:             "Sahil Cd.",
		BuildingNo:         "5",
		Unit:               "2",
		CarrierAddressCode: "987",
	}

	if addr != want {
		t.Errorf("NewAddress() = %+v, want %+v", addr, want)
	}
}
