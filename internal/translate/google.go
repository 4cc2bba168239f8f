package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the free gtx endpoint. No authentication, no rate
// limit handling on the provider side; callers must treat this client as
// unreliable and always have a fallback.
const DefaultBaseURL = "https://translate.googleapis.com"

// GoogleClient translates arbitrary text to English via the unofficial
// translate_a/single endpoint.
type GoogleClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewGoogleClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *GoogleClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GoogleClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "translator").Logger(),
	}
}

// Translate returns the English rendition of text, or an error on any
// network or response-shape failure. It never returns a partial success:
// an empty translation is an error so the caller falls back cleanly.
func (c *GoogleClient) Translate(ctx context.Context, text string) (string, error) {
	endpoint := c.baseURL + "/translate_a/single?client=gtx&sl=auto&tl=en&dt=t&q=" + url.QueryEscape(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "build translate request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call translate endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("translate endpoint returned %s", resp.Status)
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "decode translate response")
	}

	translated, err := joinSegments(payload)
	if err != nil {
		return "", err
	}

	c.logger.Debug().
		Dur("latency", time.Since(start)).
		Int("chars", len(text)).
		Msg("translated transcript")

	return translated, nil
}

// joinSegments walks the nested-array shape the gtx endpoint returns:
// [[["translated","original",...],["more","...",...]], ...]. The first
// element of each inner pair is the translated segment.
func joinSegments(payload interface{}) (string, error) {
	root, ok := payload.([]interface{})
	if !ok || len(root) == 0 {
		return "", errors.New("unexpected translate response shape")
	}
	segments, ok := root[0].([]interface{})
	if !ok {
		return "", errors.New("unexpected translate response shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		pair, ok := seg.([]interface{})
		if !ok || len(pair) == 0 {
			continue
		}
		if s, ok := pair[0].(string); ok {
			b.WriteString(s)
		}
	}

	if b.Len() == 0 {
		return "", errors.New("translate response contained no text")
	}
	return b.String(), nil
}
