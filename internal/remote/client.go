package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the hosted backend's REST surface. All methods return an
// error without side effects on failure; callers keep local state untouched.
type Client struct {
	cfg         Config
	http        *http.Client
	log         zerolog.Logger
	accessToken string
}

// RemotePost is the wire shape of a community post row.
type RemotePost struct {
	ID        string  `json:"id,omitempty"`
	Body      string  `json:"body"`
	Topic     string  `json:"topic"`
	Location  string  `json:"location,omitempty"`
	Author    *string `json:"author,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// RemoteSymptom is the wire shape of a symptom log row.
type RemoteSymptom struct {
	ID        string `json:"id,omitempty"`
	EntryDate string `json:"entry_date"`
	Name      string `json:"name"`
	Severity  int    `json:"severity"`
	HeartRate *int   `json:"heart_rate,omitempty"`
	BPSys     *int   `json:"bp_sys,omitempty"`
	BPDia     *int   `json:"bp_dia,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NewClient builds a client from config. The config must be Enabled().
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("remote backend not configured")
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log.With().Str("component", "remote").Logger(),
	}, nil
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

// SignUp registers the configured email/password with the backend.
func (c *Client) SignUp(ctx context.Context) error {
	body := map[string]string{"email": c.cfg.Email, "password": c.cfg.Password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, body, &resp); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	if resp.AccessToken != "" {
		c.accessToken = resp.AccessToken
	}
	c.log.Info().Str("email", c.cfg.Email).Msg("signed up")
	return nil
}

// SignIn exchanges the configured email/password for an access token used on
// subsequent data calls.
func (c *Client) SignIn(ctx context.Context) error {
	body := map[string]string{"email": c.cfg.Email, "password": c.cfg.Password}
	var resp authResponse
	q := url.Values{"grant_type": {"password"}}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", q, body, &resp); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("sign in: no access token in response")
	}
	c.accessToken = resp.AccessToken
	c.log.Debug().Msg("signed in")
	return nil
}

// ListPosts fetches all community posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]RemotePost, error) {
	var out []RemotePost
	q := url.Values{"select": {"*"}, "order": {"created_at.desc"}}
	if err := c.do(ctx, http.MethodGet, "/rest/v1/posts", q, nil, &out); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

// InsertPost uploads one post and returns the stored row.
func (c *Client) InsertPost(ctx context.Context, p RemotePost) (RemotePost, error) {
	var out []RemotePost
	if err := c.do(ctx, http.MethodPost, "/rest/v1/posts", nil, []RemotePost{p}, &out); err != nil {
		return RemotePost{}, fmt.Errorf("insert post: %w", err)
	}
	if len(out) == 0 {
		return RemotePost{}, fmt.Errorf("insert post: empty response")
	}
	return out[0], nil
}

// ListSymptoms fetches the caller's symptom entries.
func (c *Client) ListSymptoms(ctx context.Context) ([]RemoteSymptom, error) {
	var out []RemoteSymptom
	q := url.Values{"select": {"*"}, "order": {"entry_date.desc"}}
	if err := c.do(ctx, http.MethodGet, "/rest/v1/symptoms", q, nil, &out); err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	return out, nil
}

// InsertSymptom uploads one symptom entry and returns the stored row.
func (c *Client) InsertSymptom(ctx context.Context, s RemoteSymptom) (RemoteSymptom, error) {
	var out []RemoteSymptom
	if err := c.do(ctx, http.MethodPost, "/rest/v1/symptoms", nil, []RemoteSymptom{s}, &out); err != nil {
		return RemoteSymptom{}, fmt.Errorf("insert symptom: %w", err)
	}
	if len(out) == 0 {
		return RemoteSymptom{}, fmt.Errorf("insert symptom: empty response")
	}
	return out[0], nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := strings.TrimRight(c.cfg.URL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.cfg.Key)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Key)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, truncate(string(raw), 200))
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
