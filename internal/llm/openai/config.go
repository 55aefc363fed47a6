package openai

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config for the OpenAI-compatible completion client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g. "gpt-4o-mini"
	Temperature float32       // 0..2
	Timeout     time.Duration // per-request timeout
}

type Client struct {
	cfg      Config
	http     *resty.Client
	endpoint string
	log      *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	rc := resty.New()
	rc.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	rc.SetHeader("Content-Type", "application/json")
	rc.SetTimeout(cfg.Timeout)

	return &Client{
		cfg:      cfg,
		http:     rc,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		log:      logger,
	}
}
