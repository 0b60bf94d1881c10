// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/altyapi/altyapi/config"
	"github.com/altyapi/altyapi/infra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "altyapi",
	Short: "Türkiye internet altyapı sorgu aracı",
	Long: `
altyapi, bir adres için fiber/VDSL/ADSL uygunluğunu eklentili bir sağlayıcı
mimarisiyle sorgular: demo kuralları, Wiradius TT VAE API'si (anahtarınız
varsa) ve resmî sorgu sayfalarına yönlendirme.
`,
}

var configPath string

// Version is stamped by the build.
var Version = "dev"

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default: ./altyapi.yaml when present)")
}

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// wiradiusOptions derives the provider tuning from the configuration; the
// User-Agent carries the build version.
func wiradiusOptions(cfg *config.Config, trace bool) infra.WiradiusOptions {
	var traceWriter io.Writer
	if trace || cfg.HTTPTrace {
		traceWriter = os.Stderr
	}

	return infra.WiradiusOptions{
		BaseURL:     cfg.Wiradius.BaseURL,
		Timeout:     time.Duration(cfg.Wiradius.TimeoutSeconds) * time.Second,
		UserAgent:   "altyapi/" + Version,
		TraceWriter: traceWriter,
	}
}

func ambientCredentials(cfg *config.Config) infra.Credentials {
	return infra.Credentials{
		APICode:  cfg.Wiradius.APICode,
		UniqCode: cfg.Wiradius.UniqCode,
	}
}
