// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altyapi/altyapi/codes"
)

// Server exposes the query flow over HTTP for UI frontends. It holds the
// ambient credentials; each request may shadow them with its own pair.
type Server struct {
	creds Credentials
	wopts WiradiusOptions
	stats *Stats
	codes codes.Repository
}

// NewServer wires the web API. codeRepo may be nil when no carrier
// address-code registry has been imported.
func NewServer(creds Credentials, wopts WiradiusOptions, codeRepo codes.Repository) *Server {
	return &Server{
		creds: creds,
		wopts: wopts,
		stats: NewStats(),
		codes: codeRepo,
	}
}

// Run serves the API on the given address until the listener fails.
func (s *Server) Run(listen string) error {
	r := gin.Default()
	s.registerRoutes(r)

	return r.Run(listen)
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.POST("/api/query", s.postQuery)
	r.GET("/api/links", s.getLinks)
	r.GET("/api/status", s.getStatus)
	r.GET("/api/codes", s.searchCodes)
}

// queryRequest is the inbound payload: the address plus an optional
// transient credential pair that shadows the configured one.
type queryRequest struct {
	Address
	APICode  string `json:"wiradius_api_code,omitempty"`
	UniqCode string `json:"wiradius_uniq_code,omitempty"`
}

func (s *Server) postQuery(ctx *gin.Context) {
	var req queryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	addr, err := NewAddress(req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	creds := ResolveCredentials(s.creds, Credentials{
		APICode:  req.APICode,
		UniqCode: req.UniqCode,
	})

	orch := NewOrchestrator(s.stats, ActiveProviders(creds, s.wopts)...)
	results := orch.Query(ctx.Request.Context(), addr)

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) getLinks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, PortalLinks)
}

func (s *Server) getStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.stats.Snapshot())
}

func (s *Server) searchCodes(ctx *gin.Context) {
	if s.codes == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "adres kodu kaydı yüklü değil"})

		return
	}

	province := ctx.Query("il")
	district := ctx.Query("ilce")

	if province == "" || district == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "il ve ilce parametreleri zorunludur"})

		return
	}

	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "geçersiz limit parametresi"})

			return
		}

		limit = v
	}

	entries, err := s.codes.Search(province, district, ctx.Query("q"), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}
