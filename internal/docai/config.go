// Package docai is the HTTP client for the cloud document-understanding
// service: it enqueues one receipt, polls until the inference settles,
// and hands the decoded payload to the normalization engine untouched.
package docai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the document AI client.
type Config struct {
	APIKey       string        // if empty, falls back to env DOCAI_API_KEY
	ModelID      string        // if empty, falls back to env DOCAI_MODEL_ID
	BaseURL      string        // default https://api-v2.mindee.net/v2
	InitialDelay time.Duration // wait before the first poll
	PollInterval time.Duration // wait between polls
	MaxPolls     int           // polling attempts before giving up
	Timeout      time.Duration // per-request http timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DOCAI_API_KEY")
	}
	if cfg.ModelID == "" {
		cfg.ModelID = os.Getenv("DOCAI_MODEL_ID")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-v2.mindee.net/v2"
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Enabled reports whether the cloud backend is usable at all.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}
