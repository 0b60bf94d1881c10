// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/altyapi/altyapi/utils/httputils"
	"github.com/altyapi/altyapi/utils/textutils"
)

const (
	// DefaultWiradiusBaseURL is the production endpoint of the Wiradius
	// TT VAE lookup service.
	DefaultWiradiusBaseURL = "https://api.wiradius.com"

	// DefaultWiradiusTimeout bounds the single lookup attempt. There are no
	// retries: one POST per query, win or lose.
	DefaultWiradiusTimeout = 20 * time.Second

	wiradiusQueryPath = "/internet_infrastructure/tt_vae_query/"
)

// The upstream response schema is undocumented and has drifted before, so
// each logical field is extracted through an ordered list of candidate
// keys, first present wins. Extend these lists as new spellings show up.
var (
	technologyKeys = []string{"technology", "tech"}
	downloadKeys   = []string{"max_down", "download"}
	uploadKeys     = []string{"max_up", "upload"}
	portKey        = "port_available"
)

// technologyNames maps folded upstream spellings to the canonical set.
// Anything not listed comes back as TechUnknown.
var technologyNames = map[string]Technology{
	"fiber":  TechFiber,
	"fibre":  TechFiber,
	"ftth":   TechFiber,
	"fttb":   TechFiber,
	"vdsl":   TechVDSL,
	"vdsl2":  TechVDSL,
	"adsl":   TechADSL,
	"adsl2+": TechADSL,
	"none":   TechNone,
	"yok":    TechNone,
}

// WiradiusProvider wraps the Wiradius TT VAE HTTP lookup. It needs both
// credential tokens and a carrier address code on the query; with any of
// the three missing it declares itself inapplicable and returns nothing.
type WiradiusProvider struct {
	creds   Credentials
	baseURL string
	client  *http.Client
}

// WiradiusOptions tunes the provider. The zero value gives production
// defaults; BaseURL exists so tests can point the provider at a stub.
type WiradiusOptions struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	TraceWriter io.Writer
}

// NewWiradiusProvider builds the provider around its own HTTP client.
func NewWiradiusProvider(creds Credentials, opts WiradiusOptions) *WiradiusProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultWiradiusBaseURL
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultWiradiusTimeout
	}

	return &WiradiusProvider{
		creds:   creds,
		baseURL: baseURL,
		client: httputils.NewClient(httputils.ClientOptions{
			Timeout:     timeout,
			UserAgent:   opts.UserAgent,
			TraceWriter: opts.TraceWriter,
		}),
	}
}

// Name implements Provider.
func (p *WiradiusProvider) Name() string { return "Wiradius – TT VAE (Opsiyonel)" }

// Query implements Provider. Operational failures come back as a single
// TechError result; a missing credential or carrier code yields nil.
func (p *WiradiusProvider) Query(ctx context.Context, addr Address) []InfraResult {
	if !p.creds.Complete() || addr.CarrierAddressCode == "" {
		return nil
	}

	data, lerr := p.lookup(ctx, addr.CarrierAddressCode)
	if lerr != nil {
		return []InfraResult{errorResult(p.Name(), lerr)}
	}

	res := InfraResult{
		ProviderName:    p.Name(),
		Technology:      canonicalTechnology(firstValue(data, technologyKeys)),
		MaxDownloadMbps: firstSpeed(data, downloadKeys),
		MaxUploadMbps:   firstSpeed(data, uploadKeys),
		RawDetails:      data,
	}

	if v, ok := data[portKey].(bool); ok {
		res.PortAvailable = tristate(v)
	}

	return []InfraResult{res}
}

// lookup performs the single POST and decodes the body. All failure paths
// surface as *LookupError so Query can turn them into data.
func (p *WiradiusProvider) lookup(ctx context.Context, carrierCode string) (map[string]any, *LookupError) {
	payload, err := json.Marshal(map[string]string{
		"tt_code":   carrierCode,
		"uniq_code": p.creds.UniqCode,
	})
	if err != nil {
		return nil, &LookupError{Kind: ErrorKindInvalidRequest, Message: "istek oluşturulamadı", Err: err}
	}

	url := p.baseURL + wiradiusQueryPath + p.creds.APICode

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &LookupError{Kind: ErrorKindInvalidRequest, Message: "istek oluşturulamadı", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ClassifyHTTPStatus(resp.StatusCode)
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &LookupError{Kind: ErrorKindBadResponse, Message: "yanıt çözümlenemedi", Err: err}
	}

	return data, nil
}

// firstValue returns the first non-nil value among the candidate keys.
func firstValue(data map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

// firstSpeed extracts the first usable Mbps figure among the candidate
// keys. Negative figures are upstream noise and are dropped.
func firstSpeed(data map[string]any, keys []string) *float64 {
	v := firstValue(data, keys)
	if v == nil {
		return nil
	}

	var speed float64
	switch n := v.(type) {
	case float64:
		speed = n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil
		}

		speed = f
	default:
		return nil
	}

	if speed < 0 {
		return nil
	}

	return mbps(speed)
}

func canonicalTechnology(v any) Technology {
	if v == nil {
		return TechUnknown
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}

	if tech, ok := technologyNames[textutils.Fold(s)]; ok {
		return tech
	}

	return TechUnknown
}
