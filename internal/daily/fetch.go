// apps/go-tui/internal/daily/fetch.go
//
// Word source for the daily game.
// Issues one GET per session to {BaseURL}/{YYYY-MM-DD}.json (UTC date) and
// extracts the "solution" field from the JSON payload.
//
// Any failure is reported as a *FetchError; the caller treats it as fatal.

package daily

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/robalobadob/wordle/apps/go-tui/internal/clock"
)

// DefaultBaseURL is the public NYT endpoint serving one JSON document per day.
const DefaultBaseURL = "https://www.nytimes.com/svc/wordle/v2"

// maxPayload bounds how much of the response body is read.
const maxPayload = 64 << 10

var (
	ErrBadStatus         = errors.New("unexpected status")
	ErrNoSolution        = errors.New("payload has no solution")
	ErrMalformedSolution = errors.New("solution is not five letters")
)

// FetchError wraps every failure of the word source with the date requested.
type FetchError struct {
	Date string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch daily solution for %s: %v", e.Date, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves the daily solution over HTTP.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
	Clock   clock.Clock
}

// NewFetcher constructs a Fetcher. Empty baseURL falls back to DefaultBaseURL.
func NewFetcher(baseURL string, timeout time.Duration, clk clock.Clock) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Fetcher{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Clock:   clk,
	}
}

// URL returns the request URL for the given date key.
func (f *Fetcher) URL(date string) string {
	return f.BaseURL + "/" + date + ".json"
}

// FetchDailySolution returns today's (per Clock, UTC) lowercase solution.
func (f *Fetcher) FetchDailySolution(ctx context.Context) (string, error) {
	date := DateKey(f.Clock.Now())
	url := f.URL(date)
	start := time.Now()
	log.Info().Str("date", date).Str("url", url).Msg("fetching daily solution")

	solution, err := f.fetch(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("fetch daily solution")
		return "", &FetchError{Date: date, Err: err}
	}
	log.Info().Str("date", date).Dur("took", time.Since(start)).Msg("daily solution fetched")
	log.Debug().Str("solution", solution).Send()
	return solution, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return ParseSolution(body)
}

// ParseSolution extracts and validates the "solution" field of a payload.
func ParseSolution(payload []byte) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", fmt.Errorf("%w: invalid JSON", ErrNoSolution)
	}
	res := gjson.GetBytes(payload, "solution")
	if res.Type != gjson.String {
		return "", ErrNoSolution
	}

	word := strings.ToLower(strings.TrimSpace(res.String()))
	if len(word) != 5 || !isAlpha(word) {
		return "", fmt.Errorf("%w: %q", ErrMalformedSolution, word)
	}
	return word, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
