// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/altyapi/altyapi/config"
	"github.com/altyapi/altyapi/infra"
)

var queryOptions struct {
	address  infra.Address
	apiCode  string
	uniqCode string
	jsonOut  bool
	trace    bool
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Bir adres için altyapı uygunluğunu sorgular",
	Long: `Adresi tüm etkin sağlayıcılardan geçirir ve sonuçları sırayla listeler.
Wiradius sorgusu için --api-code/--uniq-code verin ya da WIRADIUS_API_CODE ve
WIRADIUS_UNIQ_CODE ortam değişkenlerini kullanın; TT Adres Kodu'nuzu
bilmiyorsanız önce 'altyapi codes search' deneyin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		addr, err := infra.NewAddress(queryOptions.address)
		if err != nil {
			return err
		}

		creds := infra.ResolveCredentials(ambientCredentials(cfg), infra.Credentials{
			APICode:  queryOptions.apiCode,
			UniqCode: queryOptions.uniqCode,
		})

		providers := infra.ActiveProviders(creds, wiradiusOptions(cfg, queryOptions.trace))
		results := infra.NewOrchestrator(nil, providers...).Query(cmd.Context(), addr)

		if queryOptions.jsonOut {
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(out))

			return nil
		}

		renderResults(results)

		return nil
	},
}

func formatMbps(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%g", *v)
}

func formatPort(v *bool) string {
	switch {
	case v == nil:
		return "-"
	case *v:
		return "Var"
	default:
		return "Yok"
	}
}

func renderResults(results []infra.InfraResult) {
	a, b, c, d, e := strings.Repeat("─", 32), strings.Repeat("─", 10), strings.Repeat("─", 8), strings.Repeat("─", 8), strings.Repeat("─", 4)
	fmt.Printf("╭─%-32s─┬─%-10s─┬─%-8s─┬─%-8s─┬─%-4s─╮\n", a, b, c, d, e)
	fmt.Printf("│ %-32s │ %-10s │ %-8s │ %-8s │ %-4s │\n", "Sağlayıcı", "Teknoloji", "İndirme", "Yükleme", "Port")
	fmt.Printf("├─%-32s─┼─%-10s─┼─%-8s─┼─%-8s─┼─%-4s─┤\n", a, b, c, d, e)

	for _, r := range results {
		fmt.Printf("│ %-32s │ %-10s │ %8s │ %8s │ %-4s │\n",
			r.ProviderName,
			r.Technology,
			formatMbps(r.MaxDownloadMbps),
			formatMbps(r.MaxUploadMbps),
			formatPort(r.PortAvailable),
		)
	}

	fmt.Printf("╰─%-32s─┴─%-10s─┴─%-8s─┴─%-8s─┴─%-4s─╯\n", a, b, c, d, e)

	for _, r := range results {
		switch r.Technology {
		case infra.TechRedirect:
			fmt.Printf("\n%s:\n", r.ProviderName)

			labels := make([]string, 0, len(r.RawDetails))
			for label := range r.RawDetails {
				labels = append(labels, label)
			}

			sort.Strings(labels)

			for _, label := range labels {
				fmt.Printf("  %s\n    %v\n", label, r.RawDetails[label])
			}
		case infra.TechError:
			fmt.Printf("\n%s: %v\n", r.ProviderName, r.RawDetails["error"])
		}
	}
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryOptions.address.Province, "il", "", "il (zorunlu)")
	queryCmd.Flags().StringVar(&queryOptions.address.District, "ilce", "", "ilçe (zorunlu)")
	queryCmd.Flags().StringVar(&queryOptions.address.Neighborhood, "mahalle", "", "mahalle")
	queryCmd.Flags().StringVar(&queryOptions.address.Street, "cadde", "", "cadde/sokak")
	queryCmd.Flags().StringVar(&queryOptions.address.BuildingNo, "bina-no", "", "bina no")
	queryCmd.Flags().StringVar(&queryOptions.address.Unit, "daire", "", "daire")
	queryCmd.Flags().StringVar(&queryOptions.address.CarrierAddressCode, "tt-kodu", "", "Türk Telekom adres kodu")
	queryCmd.Flags().StringVar(&queryOptions.apiCode, "api-code", "", "Wiradius API kodu (geçici)")
	queryCmd.Flags().StringVar(&queryOptions.uniqCode, "uniq-code", "", "Wiradius uniq kodu (geçici)")
	queryCmd.Flags().BoolVar(&queryOptions.jsonOut, "json", false, "ham JSON çıktısı")
	queryCmd.Flags().BoolVar(&queryOptions.trace, "trace", false, "HTTP trafiğini stderr'e dök")

	_ = queryCmd.MarkFlagRequired("il")
	_ = queryCmd.MarkFlagRequired("ilce")
}
