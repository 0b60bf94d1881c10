// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/altyapi/altyapi/codes"
	"github.com/altyapi/altyapi/config"
)

const importBatchSize = 500

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Yerel TT adres kodu kaydını yönetir",
}

var codesImportCmd = &cobra.Command{
	Use:   "import <dosya.json>",
	Short: "Bir adres kodu veri setini veritabanına yükler",
	Long: `JSON dizisi bekler: {"il", "ilce", "mahalle", "cadde_sokak", "bina_no", "kod"}
alanlarıyla kayıtlar. Mevcut veritabanı baştan oluşturulur.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		entries, err := codes.LoadFile(args[0])
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.DbPath, 0o750); err != nil {
			return fmt.Errorf("creating db directory: %w", err)
		}

		dbfile := filepath.Join(cfg.DbPath, "altyapi.duckdb")

		// rebuild from scratch: the dataset is the source of truth
		_ = os.Remove(dbfile)
		_ = os.Remove(dbfile + ".wal")

		db, err := sql.Open("duckdb", dbfile)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		repo := codes.NewRepository(db)
		if err := repo.CreateSchema(); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(entries),
				progressbar.OptionSetDescription("İçe aktarılıyor"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		for start := 0; start < len(entries); start += importBatchSize {
			end := min(start+importBatchSize, len(entries))

			if err := repo.BulkInsert(entries[start:end]); err != nil {
				return fmt.Errorf("inserting entries: %w", err)
			}

			if bar != nil {
				_ = bar.Add(end - start)
			}
		}

		fmt.Printf("%d kayıt yüklendi: %s\n", len(entries), dbfile)

		return nil
	},
}

var codesSearchOptions struct {
	province string
	district string
	needle   string
	limit    int
}

var codesSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Kayıtlı TT adres kodlarını arar",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		dbfile := filepath.Join(cfg.DbPath, "altyapi.duckdb")
		if _, err := os.Stat(dbfile); err != nil {
			return fmt.Errorf("database not found at %s - run 'codes import' first", dbfile)
		}

		db, err := sql.Open("duckdb", dbfile)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		repo := codes.NewRepository(db)

		entries, err := repo.Search(
			codesSearchOptions.province,
			codesSearchOptions.district,
			codesSearchOptions.needle,
			codesSearchOptions.limit,
		)
		if err != nil {
			return fmt.Errorf("searching codes: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Eşleşen kayıt yok.")

			return nil
		}

		a, b, c := strings.Repeat("─", 24), strings.Repeat("─", 30), strings.Repeat("─", 12)
		fmt.Printf("╭─%-24s─┬─%-30s─┬─%-12s─╮\n", a, b, c)
		fmt.Printf("│ %-24s │ %-30s │ %-12s │\n", "Mahalle", "Cadde/Sokak (Bina)", "TT Kodu")
		fmt.Printf("├─%-24s─┼─%-30s─┼─%-12s─┤\n", a, b, c)

		for _, e := range entries {
			place := e.Street
			if e.BuildingNo != "" {
				place = fmt.Sprintf("%s (%s)", e.Street, e.BuildingNo)
			}

			fmt.Printf("│ %-24s │ %-30s │ %-12s │\n", e.Neighborhood, place, e.Code)
		}

		fmt.Printf("╰─%-24s─┴─%-30s─┴─%-12s─╯\n", a, b, c)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
	codesCmd.AddCommand(codesImportCmd)
	codesCmd.AddCommand(codesSearchCmd)

	codesSearchCmd.Flags().StringVar(&codesSearchOptions.province, "il", "", "il (zorunlu)")
	codesSearchCmd.Flags().StringVar(&codesSearchOptions.district, "ilce", "", "ilçe (zorunlu)")
	codesSearchCmd.Flags().StringVarP(&codesSearchOptions.needle, "query", "q", "", "mahalle/cadde içinde aranacak metin")
	codesSearchCmd.Flags().IntVar(&codesSearchOptions.limit, "limit", 20, "en fazla sonuç sayısı")

	_ = codesSearchCmd.MarkFlagRequired("il")
	_ = codesSearchCmd.MarkFlagRequired("ilce")
}
