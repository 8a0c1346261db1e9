// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the outbound HTTP client shared by components
// that call the arXiv API.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const (
	// DefaultTimeout bounds one arXiv API call. There is no retry: a search
	// either completes within this window or fails once.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies arxiv-scout to the arXiv API, per its
	// terms of use.
	DefaultUserAgent = "arxiv-scout/0.1"
)

// NewClient builds an *http.Client with the configured timeout and a
// transport that stamps the User-Agent header on every request.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{ua: ua, base: http.DefaultTransport},
	}
}

type userAgentTransport struct {
	ua   string
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating; RoundTrippers must not modify the original.
	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", t.ua)
	}
	return t.base.RoundTrip(r)
}
