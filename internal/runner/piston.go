// Package runner proxies code snippets to a remote Piston-compatible
// execution service. It has no room awareness: results go only to the
// caller and are never broadcast.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnsupportedLanguage is returned for language tags outside the
// fixed enumerated set, before any network call is made.
var ErrUnsupportedLanguage = errors.New("language not supported for execution")

// target maps an editor language tag to a Piston runtime.
type target struct {
	Language string
	Version  string
}

var languageTargets = map[string]target{
	"javascript": {Language: "javascript", Version: "18.15.0"},
	"python":     {Language: "python", Version: "3.10.0"},
	"java":       {Language: "java", Version: "15.0.2"},
	"c_cpp":      {Language: "c++", Version: "10.2.0"},
}

// Client calls a Piston-compatible execution endpoint.
type Client struct {
	url  string
	http *http.Client
	log  *zerolog.Logger
}

// New builds an execution client for the given endpoint URL.
func New(url string, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// Supported reports whether the language tag can be executed.
func Supported(language string) bool {
	_, ok := languageTargets[language]
	return ok
}

type executeRequest struct {
	Language string        `json:"language"`
	Version  string        `json:"version"`
	Files    []executeFile `json:"files"`
}

type executeFile struct {
	Content string `json:"content"`
}

type executeResponse struct {
	Run struct {
		Output string `json:"output"`
	} `json:"run"`
}

// Run executes source code remotely and returns the captured output.
// The caller blocks until the service responds or the client times out.
func (c *Client) Run(ctx context.Context, code, language string) (string, error) {
	tgt, ok := languageTargets[language]
	if !ok {
		return "", ErrUnsupportedLanguage
	}

	body, err := json.Marshal(executeRequest{
		Language: tgt.Language,
		Version:  tgt.Version,
		Files:    []executeFile{{Content: code}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal execute request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build execute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call execution service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.log != nil {
			c.log.Warn().Int("status", resp.StatusCode).Str("language", language).Msg("execution service rejected request")
		}
		return "", fmt.Errorf("execution service returned status %d", resp.StatusCode)
	}

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode execute response: %w", err)
	}

	return out.Run.Output, nil
}
