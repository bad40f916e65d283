package dreaming

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"dreaming-migrate/internal/domain"
)

const externalTimePath = "/.netlify/functions/externalTime"

// Client talks to the Dreaming external-time API on behalf of one account.
// It implements both ports.ExternalTimeSource and ports.ExternalTimeSink;
// the migration wires two instances, one per token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, token string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://app.dreaming.com"
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// ListTimeEntries fetches every entry for the language, requesting
// successive pages until the response carries no nextPage cursor.
func (c *Client) ListTimeEntries(ctx context.Context, language domain.Language) ([]domain.TimeEntry, error) {
	if c.token == "" {
		return nil, errors.New("missing bearer token")
	}

	var out []domain.TimeEntry
	cursor := ""
	for {
		raw, next, err := c.fetchPage(ctx, language, cursor)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			out = append(out, domain.TimeEntry{
				ID:              r.ID,
				Title:           r.Title,
				Description:     r.Description,
				DurationSeconds: r.TimeSeconds,
				Type:            r.Type,
				Date:            r.Date,
				URL:             r.URL,
			})
		}
		if next == "" || next == cursor {
			return out, nil
		}
		cursor = next
		c.log.Debug("fetching next page", slog.String("cursor", cursor), slog.Int("accumulated", len(out)))
	}
}

func (c *Client) fetchPage(ctx context.Context, language domain.Language, cursor string) ([]rawTimeEntry, string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, "", err
	}
	u.Path = externalTimePath
	q := u.Query()
	q.Set("language", string(language))
	if cursor != "" {
		q.Set("page", cursor)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", responseError(resp.StatusCode, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &domain.NetworkError{Err: err}
	}
	return decodeEntries(body)
}

// CreateTimeEntry posts one submission to the account's language. Any 2xx
// response is success.
func (c *Client) CreateTimeEntry(ctx context.Context, language domain.Language, sub domain.Submission) error {
	if c.token == "" {
		return errors.New("missing bearer token")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u.Path = externalTimePath
	q := u.Query()
	q.Set("language", string(language))
	u.RawQuery = q.Encode()

	payload, err := json.Marshal(rawSubmission{
		Title:          sub.Title,
		Description:    sub.Description,
		TimeSeconds:    sub.DurationSeconds,
		Type:           sub.Type,
		Date:           sub.Date,
		URL:            sub.URL,
		IdempotencyKey: sub.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "*/*")
	// The service expects JSON under a text/plain content type.
	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return responseError(resp.StatusCode, body)
	}
	// Response body is the created entry; nothing in it is needed.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func responseError(status int, body []byte) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &domain.AuthError{Status: status, Body: string(body)}
	}
	return &domain.APIError{Status: status, Body: string(body)}
}

// decodeEntries normalizes the list response. The service has been observed
// to return an {"externalTimes": [...]} object, a bare array, or either of
// those double-encoded as a JSON string.
func decodeEntries(body []byte) ([]rawTimeEntry, string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err == nil {
			trimmed = bytes.TrimSpace([]byte(inner))
		}
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []rawTimeEntry
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, "", err
		}
		return raw, "", nil
	}
	var page rawPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, "", err
	}
	return page.ExternalTimes, page.NextPage, nil
}

// rawPage mirrors the wrapped list response.
type rawPage struct {
	ExternalTimes []rawTimeEntry `json:"externalTimes"`
	NextPage      string         `json:"nextPage"`
}

// rawTimeEntry mirrors one entry in the Dreaming API JSON.
type rawTimeEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeSeconds int64  `json:"timeSeconds"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	URL         string `json:"url"`
}

type rawSubmission struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	TimeSeconds    int64  `json:"timeSeconds"`
	Type           string `json:"type"`
	Date           string `json:"date"`
	URL            string `json:"url,omitempty"`
	IdempotencyKey string `json:"idempotencyKey"`
}
