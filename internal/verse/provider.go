package verse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tobiajayi/daily-verse-api/pkg/config"
)

// Provider fetches a random verse from the remote bible API.
//
// Random never leaves the caller without a verse: on any network, status or
// parse failure it returns the locale fallback verse with an empty reference
// and the cause for logging.
type Provider struct {
	baseURL     string
	translation string
	locale      string
	client      *http.Client
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		baseURL:     strings.TrimSuffix(cfg.VerseAPIBaseURL, "/"),
		translation: TranslationFor(cfg.Locale),
		locale:      cfg.Locale,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type randomVerseResponse struct {
	RandomVerse struct {
		Book    string `json:"book"`
		Chapter int    `json:"chapter"`
		Verse   int    `json:"verse"`
		Text    string `json:"text"`
	} `json:"random_verse"`
}

// Random issues one GET to the locale-selected random verse endpoint.
func (p *Provider) Random(ctx context.Context) (Verse, error) {
	url := fmt.Sprintf("%s/data/%s/random", p.baseURL, p.translation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return p.fallback(), fmt.Errorf("failed to build verse request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return p.fallback(), fmt.Errorf("verse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return p.fallback(), fmt.Errorf("verse endpoint returned %s", resp.Status)
	}

	var body randomVerseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return p.fallback(), fmt.Errorf("failed to decode verse response: %w", err)
	}

	rv := body.RandomVerse
	text := strings.TrimSpace(rv.Text)
	if text == "" {
		return p.fallback(), fmt.Errorf("verse response missing text")
	}
	book := strings.TrimSpace(rv.Book)
	if book == "" {
		return p.fallback(), fmt.Errorf("verse response missing book")
	}

	return Verse{
		Text:        text,
		Reference:   fmt.Sprintf("%s %d:%d", book, rv.Chapter, rv.Verse),
		Translation: p.translation,
		FetchedAt:   time.Now(),
	}, nil
}

func (p *Provider) fallback() Verse {
	return Verse{
		Text:        FallbackMessage(p.locale),
		Reference:   "",
		Translation: p.translation,
		FetchedAt:   time.Now(),
	}
}
