package source_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deadline/pkg/source"
)

type dropboxServer struct {
	*httptest.Server
	tokenCalls atomic.Int32
	files      map[string][]byte
}

func newDropboxServer(t *testing.T) *dropboxServer {
	t.Helper()

	ds := &dropboxServer{files: map[string][]byte{
		"/生産部/工場予定表.xlsx": []byte("workbook"),
	}}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		ds.tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("grant_type") != "refresh_token" || r.PostForm.Get("refresh_token") != "good-refresh" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		require.Equal(t, "app-key", r.PostForm.Get("client_id"))
		require.Equal(t, "app-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-" + strconv.Itoa(int(ds.tokenCalls.Load())),
			"token_type":   "bearer",
			"expires_in":   14400,
		})
	})
	mux.HandleFunc("/2/files/download", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		arg := r.Header.Get("Dropbox-API-Arg")
		for _, c := range arg {
			require.Less(t, c, rune(0x80), "header must be ASCII")
		}

		var req struct {
			Path string `json:"path"`
		}
		require.NoError(t, json.Unmarshal([]byte(arg), &req))

		switch req.Path {
		case "/forbidden.xlsx":
			w.WriteHeader(http.StatusForbidden)
			return
		case "/broken.xlsx":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		data, ok := ds.files[req.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error_summary":"path/not_found/..","error":{".tag":"path"}}`))
			return
		}
		_, _ = w.Write(data)
	})

	ds.Server = httptest.NewServer(mux)
	t.Cleanup(ds.Close)
	return ds
}

func (ds *dropboxServer) config(refresh string) source.DropboxConfig {
	return source.DropboxConfig{
		AppKey:       "app-key",
		AppSecret:    "app-secret",
		RefreshToken: refresh,
		TokenURL:     ds.URL + "/oauth2/token",
		DownloadURL:  ds.URL + "/2/files/download",
	}
}

func TestDropbox_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads with refreshed token", func(t *testing.T) {
		t.Parallel()
		ds := newDropboxServer(t)
		src, err := source.NewDropbox(ds.config("good-refresh"), source.WithHTTPClient(ds.Client()))
		require.NoError(t, err)

		for range 2 {
			data, err := src.Fetch(context.Background(), "/生産部/工場予定表.xlsx")
			require.NoError(t, err)
			require.Equal(t, []byte("workbook"), data)
		}
		require.Equal(t, int32(1), ds.tokenCalls.Load(), "token must be reused until expiry")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		ds := newDropboxServer(t)
		src, err := source.NewDropbox(ds.config("good-refresh"), source.WithHTTPClient(ds.Client()))
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "/nope.xlsx")
		require.ErrorIs(t, err, source.ErrNotFound)
		require.Contains(t, err.Error(), "path/not_found")
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		ds := newDropboxServer(t)
		src, err := source.NewDropbox(ds.config("good-refresh"), source.WithHTTPClient(ds.Client()))
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "/forbidden.xlsx")
		require.ErrorIs(t, err, source.ErrAccessDenied)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		ds := newDropboxServer(t)
		src, err := source.NewDropbox(ds.config("good-refresh"), source.WithHTTPClient(ds.Client()))
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "/broken.xlsx")
		require.ErrorIs(t, err, source.ErrFetchFailed)
	})

	t.Run("rejected refresh token", func(t *testing.T) {
		t.Parallel()
		ds := newDropboxServer(t)
		src, err := source.NewDropbox(ds.config("revoked"), source.WithHTTPClient(ds.Client()))
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "/生産部/工場予定表.xlsx")
		require.ErrorIs(t, err, source.ErrAccessDenied)
	})
}

func TestDropbox_Fetch_TokenTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	src, err := source.NewDropbox(source.DropboxConfig{
		AppKey:       "app-key",
		AppSecret:    "app-secret",
		RefreshToken: "good-refresh",
		Timeout:      100 * time.Millisecond,
		TokenURL:     srv.URL + "/oauth2/token",
		DownloadURL:  srv.URL + "/2/files/download",
	}, source.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	start := time.Now()
	_, err = src.Fetch(context.Background(), "/生産部/工場予定表.xlsx")
	require.ErrorIs(t, err, source.ErrFetchFailed)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestNewDropbox_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  source.DropboxConfig
	}{
		{name: "missing app key", cfg: source.DropboxConfig{AppSecret: "s", RefreshToken: "r"}},
		{name: "missing app secret", cfg: source.DropboxConfig{AppKey: "k", RefreshToken: "r"}},
		{name: "missing refresh token", cfg: source.DropboxConfig{AppKey: "k", AppSecret: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src, err := source.NewDropbox(tt.cfg)
			require.ErrorIs(t, err, source.ErrInvalidConfig)
			require.Nil(t, src)
		})
	}
}
