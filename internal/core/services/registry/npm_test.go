package registry_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/services/registry"
	"oras.land/oras-go/v2/registry/remote/retry"
)

func newRegistryServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNpmClient_FetchLatest_ChannelTags(t *testing.T) {
	tests := []struct {
		channel domain.UpdateChannel
		path    string
		version string
	}{
		{domain.UpdateChannelStable, "/the-companion/latest", "99.0.0"},
		{domain.UpdateChannelPrerelease, "/the-companion/next", "99.0.0-preview.1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.channel), func(t *testing.T) {
			var gotPath, gotAccept string
			srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAccept = r.Header.Get("Accept")
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"name":"the-companion","version":"` + tt.version + `"}`))
			})

			client := registry.NewNpmClient(srv.URL+"/the-companion/", time.Second, registry.WithHTTPClient(srv.Client()))
			version, err := client.FetchLatest(context.Background(), tt.channel)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if version != tt.version {
				t.Errorf("Expected version %s, got %s", tt.version, version)
			}
			if gotPath != tt.path {
				t.Errorf("Expected path %s, got %s", tt.path, gotPath)
			}
			if gotAccept != "application/json" {
				t.Errorf("Expected Accept application/json, got '%s'", gotAccept)
			}
		})
	}
}

func TestNpmClient_FetchLatest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{}`, registry.ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, `{"error":"not found"}`, registry.ErrUnexpectedStatus},
		{"malformed body", http.StatusOK, `{"version":`, nil},
		{"missing version", http.StatusOK, `{"name":"the-companion"}`, registry.ErrMissingVersion},
		{"unparsable version", http.StatusOK, `{"version":"latest"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			client := registry.NewNpmClient(srv.URL, time.Second, registry.WithHTTPClient(srv.Client()))
			version, err := client.FetchLatest(context.Background(), domain.UpdateChannelStable)
			if err == nil {
				t.Fatalf("Expected error, got version %s", version)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if version != "" {
				t.Errorf("Expected empty version, got %s", version)
			}
		})
	}
}

func TestNpmClient_FetchLatest_UnparsableVersionIsParseError(t *testing.T) {
	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"v1.x"}`))
	})

	client := registry.NewNpmClient(srv.URL, time.Second, registry.WithHTTPClient(srv.Client()))
	_, err := client.FetchLatest(context.Background(), domain.UpdateChannelStable)

	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
}

func TestNpmClient_FetchLatest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := registry.NewNpmClient(url, time.Second, registry.WithHTTPClient(&http.Client{Timeout: time.Second}))
	if _, err := client.FetchLatest(context.Background(), domain.UpdateChannelStable); err == nil {
		t.Fatal("Expected error for unreachable registry")
	}
}

func TestNpmClient_FetchLatest_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := registry.NewNpmClient(srv.URL, 50*time.Millisecond, registry.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	if _, err := client.FetchLatest(context.Background(), domain.UpdateChannelStable); err == nil {
		t.Fatal("Expected timeout error")
	}
}

func TestNpmClient_FetchLatest_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"version":"1.2.3"}`))
	})

	client := registry.NewNpmClient(srv.URL, 5*time.Second, registry.WithRetryPolicy(&retry.GenericPolicy{
		Retryable: retry.DefaultPredicate,
		Backoff:   retry.DefaultBackoff,
		MinWait:   time.Millisecond,
		MaxWait:   5 * time.Millisecond,
		MaxRetry:  3,
	}))

	version, err := client.FetchLatest(context.Background(), domain.UpdateChannelStable)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", version)
	}
	if calls.Load() != 2 {
		t.Errorf("Expected 2 registry calls, got %d", calls.Load())
	}
}

func TestNpmClient_UnknownChannel(t *testing.T) {
	client := registry.NewNpmClient("", time.Second)

	_, err := client.FetchLatest(context.Background(), domain.UpdateChannel("nightly"))
	if !errors.Is(err, domain.ErrUnknownUpdateChannel) {
		t.Errorf("Expected ErrUnknownUpdateChannel, got %v", err)
	}

	url, err := client.URL(domain.UpdateChannelStable)
	if err != nil {
		t.Fatal(err)
	}
	if url != registry.DefaultBaseURL+"/latest" {
		t.Errorf("Expected default base url, got %s", url)
	}
}
