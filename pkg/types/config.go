// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared settings for outbound HTTP requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent to the arXiv API
	// (e.g. "arxiv-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the arXiv query endpoint. Tests point this at an
	// httptest server.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxResults is the default page size when a request does not set one.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Port is the TCP port the server listens on (default 8000).
	Port int `json:"port" yaml:"port"`

	// CORSOrigins lists allowed browser origins. Defaults to the local
	// web frontend.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`

	// LogLevel overrides the zap level: debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// HistoryConfig holds settings for the search history store.
type HistoryConfig struct {
	// Enabled turns history recording on. Default true.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file (default "arxiv-scout-history.db").
	Path string `json:"path" yaml:"path"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	History HistoryConfig `json:"history" yaml:"history"`
}
