package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/oauth2"
)

// Dropbox API endpoints.
const (
	DropboxTokenURL    = "https://api.dropboxapi.com/oauth2/token"
	DropboxDownloadURL = "https://content.dropboxapi.com/2/files/download"
)

// DropboxConfig holds Dropbox source configuration.
// An app key, app secret and long-lived refresh token are required;
// access tokens are minted and renewed from the refresh token.
type DropboxConfig struct {
	AppKey       string        `env:"DROPBOX_APP_KEY"`
	AppSecret    string        `env:"DROPBOX_APP_SECRET"`
	RefreshToken string        `env:"DROPBOX_REFRESH_TOKEN"`
	Timeout      time.Duration `env:"DROPBOX_TIMEOUT" envDefault:"15m"`
	TokenURL     string        `env:"DROPBOX_TOKEN_URL" envDefault:"https://api.dropboxapi.com/oauth2/token"`
	DownloadURL  string        `env:"DROPBOX_DOWNLOAD_URL" envDefault:"https://content.dropboxapi.com/2/files/download"`
	MaxSize      int64         `env:"SOURCE_MAX_SIZE" envDefault:"67108864"`
}

// DropboxOption configures a Dropbox source.
type DropboxOption func(*Dropbox)

// WithHTTPClient sets the HTTP client used for token refresh and downloads.
// This is useful for testing with httptest servers.
func WithHTTPClient(client *http.Client) DropboxOption {
	return func(d *Dropbox) {
		if client != nil {
			d.httpClient = client
		}
	}
}

// Dropbox downloads workbooks through the Dropbox content API.
type Dropbox struct {
	httpClient  *http.Client
	client      *http.Client
	downloadURL string
	timeout     time.Duration
	maxSize     int64
}

// NewDropbox creates a Dropbox source.
func NewDropbox(cfg DropboxConfig, opts ...DropboxOption) (*Dropbox, error) {
	var missing []string
	if cfg.AppKey == "" {
		missing = append(missing, "app key")
	}
	if cfg.AppSecret == "" {
		missing = append(missing, "app secret")
	}
	if cfg.RefreshToken == "" {
		missing = append(missing, "refresh token")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: dropbox %s required", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DropboxTokenURL
	}
	if cfg.DownloadURL == "" {
		cfg.DownloadURL = DropboxDownloadURL
	}

	d := &Dropbox{
		httpClient:  http.DefaultClient,
		downloadURL: cfg.DownloadURL,
		timeout:     cfg.Timeout,
		maxSize:     cfg.MaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	conf := &oauth2.Config{
		ClientID:     cfg.AppKey,
		ClientSecret: cfg.AppSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	// Token refreshes run without the request context, so the timeout is
	// enforced on the client itself.
	tokenClient := &http.Client{Transport: d.httpClient.Transport, Timeout: d.timeout}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)
	tokens := conf.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	base := d.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	d.client = &http.Client{
		Transport: &oauth2.Transport{Source: tokens, Base: base},
	}

	return d, nil
}

// Fetch downloads the file at path, e.g. "/team/schedule.xlsx".
func (d *Dropbox) Fetch(ctx context.Context, path string) ([]byte, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	arg, err := headerJSON(map[string]string{"path": path})
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("encode api arg: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.downloadURL, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Dropbox-API-Arg", arg)

	resp, err := d.client.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, errors.Join(ErrAccessDenied, fmt.Errorf("refresh token: %w", retrieveErr))
		}
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("download %s: %w", path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dropboxError(resp)
	}
	return readLimited(resp.Body, d.maxSize)
}

// dropboxError maps a non-200 download response to a sentinel.
func dropboxError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr struct {
		Summary string `json:"error_summary"`
	}
	summary := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Summary != "" {
		summary = apiErr.Summary
	}

	cause := fmt.Errorf("download failed: status=%d summary=%s", resp.StatusCode, summary)
	switch {
	case resp.StatusCode == http.StatusConflict && strings.Contains(summary, "not_found"):
		return errors.Join(ErrNotFound, cause)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return errors.Join(ErrAccessDenied, cause)
	default:
		return errors.Join(ErrFetchFailed, cause)
	}
}

// headerJSON encodes v as JSON safe for an HTTP header value:
// every non-ASCII character is written as a \uXXXX escape.
func headerJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range string(raw) {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String(), nil
}
