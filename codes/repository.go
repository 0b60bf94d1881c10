// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

// Package codes keeps a local registry of carrier address codes ("TT Adres
// Kodu"), the identifiers the Wiradius lookup requires instead of free-text
// address fields. The registry is a static reference dataset imported from a
// JSON file; nothing about user queries is stored here.
package codes

import (
	"database/sql"
	"strings"

	"github.com/altyapi/altyapi/utils/textutils"
)

// Entry is one carrier address-code record.
type Entry struct {
	Province     string `json:"il"`
	District     string `json:"ilce"`
	Neighborhood string `json:"mahalle"`
	Street       string `json:"cadde_sokak"`
	BuildingNo   string `json:"bina_no"`
	Code         string `json:"kod"`
}

// Repository handles persistence of carrier address codes.
type Repository interface {
	// CreateSchema creates the carrier_codes table
	CreateSchema() error

	// BulkInsert inserts a batch of entries in one transaction
	BulkInsert(entries []Entry) error

	// Search returns entries matching the folded province and district,
	// optionally narrowed by a free-text needle over the finer fields
	Search(province, district, needle string, limit int) ([]Entry, error)

	// Count returns the total number of entries
	Count() (int, error)
}

type sqlCodeRepository struct {
	db *sql.DB
}

// NewRepository creates a code repository over an open DuckDB handle.
func NewRepository(db *sql.DB) Repository {
	return &sqlCodeRepository{db: db}
}

func (r *sqlCodeRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE SEQUENCE IF NOT EXISTS carrier_codes_seq START 1;

		CREATE TABLE IF NOT EXISTS carrier_codes (
			id INTEGER PRIMARY KEY DEFAULT nextval('carrier_codes_seq'),
			province VARCHAR NOT NULL,
			district VARCHAR NOT NULL,
			neighborhood VARCHAR NOT NULL,
			street VARCHAR NOT NULL,
			building_no VARCHAR NOT NULL,
			code VARCHAR NOT NULL,
			province_key VARCHAR NOT NULL,
			district_key VARCHAR NOT NULL,
			search_key VARCHAR NOT NULL,
			UNIQUE(code)
		);
	`)

	return err
}

// searchKey folds the finer address fields into one haystack so a needle
// like "ataturk cad" matches regardless of accents or casing.
func searchKey(e Entry) string {
	parts := []string{e.Neighborhood, e.Street, e.BuildingNo}

	return textutils.Fold(strings.Join(parts, " "))
}

func (r *sqlCodeRepository) BulkInsert(entries []Entry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO carrier_codes(
			province,
			district,
			neighborhood,
			street,
			building_no,
			code,
			province_key,
			district_key,
			search_key
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	defer stmt.Close()

	for _, e := range entries {
		_, err = stmt.Exec(
			e.Province,
			e.District,
			e.Neighborhood,
			e.Street,
			e.BuildingNo,
			e.Code,
			textutils.Fold(e.Province),
			textutils.Fold(e.District),
			searchKey(e),
		)
		if err != nil {
			_ = tx.Rollback()

			return err
		}
	}

	return tx.Commit()
}

func (r *sqlCodeRepository) Search(province, district, needle string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT province, district, neighborhood, street, building_no, code
		FROM carrier_codes
		WHERE province_key = ?
		  AND district_key = ?
		  AND (? = '' OR search_key LIKE '%' || ? || '%')
		ORDER BY neighborhood, street, building_no
		LIMIT ?
	`,
		textutils.Fold(province),
		textutils.Fold(district),
		textutils.Fold(needle),
		textutils.Fold(needle),
		limit,
	)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Province, &e.District, &e.Neighborhood, &e.Street, &e.BuildingNo, &e.Code); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *sqlCodeRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM carrier_codes`).Scan(&count)

	return count, err
}
