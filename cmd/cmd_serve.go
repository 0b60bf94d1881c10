// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/altyapi/altyapi/codes"
	"github.com/altyapi/altyapi/config"
	"github.com/altyapi/altyapi/infra"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sorgu API'sini HTTP üzerinden sunar",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		listen := serveListen
		if listen == "" {
			listen = cfg.Listen
		}

		var repo codes.Repository

		dbfile := filepath.Join(cfg.DbPath, "altyapi.duckdb")
		if _, err := os.Stat(dbfile); err == nil {
			db, err := sql.Open("duckdb", dbfile)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			repo = codes.NewRepository(db)
			log.Printf("adres kodu kaydı açıldı: %s", dbfile)
		} else if errors.Is(err, os.ErrNotExist) {
			log.Printf("adres kodu veritabanı yok (%s), /api/codes devre dışı, 'altyapi codes import' ile yükleyin", dbfile)
		} else {
			return fmt.Errorf("checking database: %w", err)
		}

		gin.SetMode(gin.ReleaseMode)

		server := infra.NewServer(ambientCredentials(cfg), wiradiusOptions(cfg, false), repo)

		log.Printf("API dinliyor: http://%s", listen)

		return server.Run(listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveListen, "listen", "", "dinlenecek adres (varsayılan: konfigürasyondaki listen)")
}
