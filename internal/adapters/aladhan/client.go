package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

const DefaultBaseURL = "https://api.aladhan.com"

var ErrUnexpectedResponse = errors.New("aladhan: unexpected response")

type ClientConfig struct {
	BaseURL string

	// HTTPClient is optional; tests inject the one from httptest.
	HTTPClient *http.Client

	Timeout time.Duration
}

// Client converts Gregorian dates with the Aladhan gToH endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(config ClientConfig) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 3 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

type gToHResponse struct {
	Code int `json:"code"`
	Data struct {
		Hijri struct {
			Day   string `json:"day"`
			Year  string `json:"year"`
			Month struct {
				Number int `json:"number"`
			} `json:"month"`
		} `json:"hijri"`
	} `json:"data"`
}

func (c *Client) HijriDate(ctx context.Context, day time.Time) (*domain.HijriDate, error) {
	url := fmt.Sprintf("%s/v1/gToH/%s", c.baseURL, day.Format("02-01-2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("aladhan: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aladhan: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnexpectedResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload gToHResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("aladhan: failed to decode response: %w", err)
	}

	return parseHijri(payload)
}

func parseHijri(payload gToHResponse) (*domain.HijriDate, error) {
	h := payload.Data.Hijri
	d, err := strconv.Atoi(h.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: day %q", ErrUnexpectedResponse, h.Day)
	}
	y, err := strconv.Atoi(h.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: year %q", ErrUnexpectedResponse, h.Year)
	}

	date := &domain.HijriDate{Year: y, Month: h.Month.Number, Day: d}
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return date, nil
}
